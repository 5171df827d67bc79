package domain

// Intent names the rule that produced a Result.
type Intent string

const (
	IntentAdd          Intent = "add"
	IntentRemove       Intent = "remove"
	IntentClear        Intent = "clear"
	IntentSearch       Intent = "search"
	IntentNavigate     Intent = "navigate"
	IntentShowCart     Intent = "show_cart"
	IntentProductQuery Intent = "product_query"
	IntentUnrecognized Intent = "unrecognized"
)

func (i Intent) String() string { return string(i) }

// Result is the interpreter's output. The set of implementations is closed;
// callers switch on the concrete type.
type Result interface {
	Intent() Intent
	isResult()
}

type AddItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type RemoveItem struct {
	Query string `json:"query"`
}

type ClearList struct{}

type Search struct {
	Query string `json:"query"`
}

type Navigate struct {
	Target string `json:"target"`
}

type ShowCart struct {
	ListSize int `json:"list_size"`
}

// Attribute selects which part of a product record a query asked about.
type Attribute string

const (
	AttributeBattery   Attribute = "battery"
	AttributeMemory    Attribute = "memory"
	AttributeProcessor Attribute = "processor"
	AttributeAll       Attribute = "all"
)

type ProductQuery struct {
	Product   string    `json:"product"`
	Attribute Attribute `json:"attribute"`
	Value     string    `json:"value"`
}

// Unrecognized covers both "no rule matched" (Rule == IntentUnrecognized) and
// "a rule matched but could not be completed"; Reason says which.
type Unrecognized struct {
	RawText string `json:"raw_text"`
	Rule    Intent `json:"rule"`
	Reason  error  `json:"-"`
	Product string `json:"product,omitempty"` // set with ErrNoProductDetails
}

func (AddItem) Intent() Intent      { return IntentAdd }
func (RemoveItem) Intent() Intent   { return IntentRemove }
func (ClearList) Intent() Intent    { return IntentClear }
func (Search) Intent() Intent       { return IntentSearch }
func (Navigate) Intent() Intent     { return IntentNavigate }
func (ShowCart) Intent() Intent     { return IntentShowCart }
func (ProductQuery) Intent() Intent { return IntentProductQuery }
func (Unrecognized) Intent() Intent { return IntentUnrecognized }

func (AddItem) isResult()      {}
func (RemoveItem) isResult()   {}
func (ClearList) isResult()    {}
func (Search) isResult()       {}
func (Navigate) isResult()     {}
func (ShowCart) isResult()     {}
func (ProductQuery) isResult() {}
func (Unrecognized) isResult() {}
