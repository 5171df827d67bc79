// Package assistant holds the application state of one shopping session and
// turns interpreted utterances and direct edits into list changes and
// user-facing feedback.
package assistant

import (
	"errors"
	"fmt"
	"strings"

	"shoplist/internal/catalog"
	"shoplist/internal/domain"
	"shoplist/internal/interpreter"
	"shoplist/internal/shoplist"
	"shoplist/internal/speech"
	"shoplist/internal/suggest"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// Recorder receives one record per handled utterance.
type Recorder interface {
	Record(rec domain.InterpretationRecord) (int64, error)
}

// Outcome is the state a front end renders after an event.
type Outcome struct {
	Result      domain.Result
	Feedback    string
	Items       []domain.ListItem
	Groups      []domain.CategoryGroup
	Suggestions []domain.Suggestion
}

type Controller struct {
	catalog     *catalog.Catalog
	interpreter *interpreter.Interpreter
	list        *shoplist.List
	recorder    Recorder

	language        language.Tag
	transcript      string
	feedback        string
	processing      bool
	selectedProduct string
	searchQuery     string
	suggestions     []domain.Suggestion
}

type Option func(*controllerOptions)

type controllerOptions struct {
	recorder Recorder
	language language.Tag
	listOpts []shoplist.Option
}

func WithRecorder(r Recorder) Option {
	return func(o *controllerOptions) { o.recorder = r }
}

func WithLanguage(tag language.Tag) Option {
	return func(o *controllerOptions) { o.language = tag }
}

func WithListOptions(opts ...shoplist.Option) Option {
	return func(o *controllerOptions) { o.listOpts = append(o.listOpts, opts...) }
}

func New(c *catalog.Catalog, opts ...Option) *Controller {
	o := controllerOptions{language: speech.SupportedLanguages[0]}
	for _, opt := range opts {
		opt(&o)
	}
	ctl := &Controller{
		catalog:     c,
		interpreter: interpreter.New(c),
		list:        shoplist.New(c, o.listOpts...),
		recorder:    o.recorder,
		language:    o.language,
	}
	ctl.refreshSuggestions()
	return ctl
}

// Submit interprets one final utterance and applies it.
func (c *Controller) Submit(text string) Outcome {
	c.processing = true
	c.transcript = strings.TrimSpace(text)
	c.feedback = "Processing..."

	result := c.interpreter.Interpret(text, interpreter.Context{
		CurrentProduct: c.selectedProduct,
		ListSize:       c.list.Len(),
	})
	c.feedback = c.apply(result)
	c.processing = false
	c.refreshSuggestions()

	log.Infof("submit intent=%s list_size=%d", result.Intent(), c.list.Len())
	c.record(text, result)
	return c.outcome(result)
}

func (c *Controller) apply(result domain.Result) string {
	switch r := result.(type) {
	case domain.AddItem:
		return c.addItem(r.Name, r.Quantity)
	case domain.RemoveItem:
		removed, err := c.list.RemoveByQuery(r.Query)
		if err != nil {
			return fmt.Sprintf("Couldn't find %q", r.Query)
		}
		return fmt.Sprintf("Removed %s", removed.Name)
	case domain.ClearList:
		c.list.Clear()
		return "Shopping list cleared"
	case domain.Search:
		c.searchQuery = r.Query
		return fmt.Sprintf("Showing results for %q", r.Query)
	case domain.Navigate:
		return fmt.Sprintf("Scrolled to %s", r.Target)
	case domain.ShowCart:
		return fmt.Sprintf("Cart has %d item(s).", r.ListSize)
	case domain.ProductQuery:
		if r.Attribute == domain.AttributeAll {
			return fmt.Sprintf("%s: %s", r.Product, r.Value)
		}
		return fmt.Sprintf("%s: %s - %s", r.Product, r.Attribute, r.Value)
	case domain.Unrecognized:
		return unrecognizedFeedback(r)
	default:
		return unrecognizedFeedback(domain.Unrecognized{Reason: domain.ErrUnrecognized})
	}
}

func unrecognizedFeedback(r domain.Unrecognized) string {
	switch {
	case errors.Is(r.Reason, domain.ErrMissingItemName):
		return `Tell me what to add, e.g., "Add 2 bananas"`
	case errors.Is(r.Reason, domain.ErrMissingRemoveTarget):
		return "Which item should I remove?"
	case errors.Is(r.Reason, domain.ErrMissingSearchTerm):
		return "What would you like me to show?"
	case errors.Is(r.Reason, domain.ErrMissingNavigateTarget):
		return "Which section should I scroll to?"
	case errors.Is(r.Reason, domain.ErrNoProductResolved):
		return "Which product do you mean?"
	case errors.Is(r.Reason, domain.ErrNoProductDetails):
		return fmt.Sprintf("No details for %s", r.Product)
	default:
		return fmt.Sprintf(`Sorry, I didn't understand: %q. Try "Add milk" or "Show me phones".`, r.RawText)
	}
}

func (c *Controller) addItem(name string, quantity int) string {
	item, err := c.list.Add(name, quantity)
	if errors.Is(err, domain.ErrEmptyName) {
		return "Please provide an item name."
	}
	if err != nil {
		log.Warnf("add failed name=%q err=%v", name, err)
		return fmt.Sprintf("Could not add %s", strings.TrimSpace(name))
	}
	return fmt.Sprintf("Added %d %s", item.Quantity, item.Name)
}

// ManualAdd is the typed add form.
func (c *Controller) ManualAdd(name string, quantity int) Outcome {
	if strings.TrimSpace(name) == "" {
		c.feedback = "Type an item name first."
		return c.outcome(nil)
	}
	c.feedback = c.addItem(name, quantity)
	c.refreshSuggestions()
	return c.outcome(nil)
}

// AddSuggestion adds one suggested item with quantity 1.
func (c *Controller) AddSuggestion(name string) Outcome {
	return c.ManualAdd(name, 1)
}

func (c *Controller) RemoveByID(id string) (Outcome, error) {
	removed, err := c.list.RemoveByID(id)
	if err != nil {
		return c.outcome(nil), err
	}
	c.feedback = fmt.Sprintf("Removed %s", removed.Name)
	c.refreshSuggestions()
	return c.outcome(nil), nil
}

func (c *Controller) SetQuantity(id string, quantity int) (Outcome, error) {
	return c.edit(c.list.SetQuantity(id, quantity))
}

func (c *Controller) Increment(id string) (Outcome, error) {
	return c.edit(c.list.Increment(id))
}

func (c *Controller) Decrement(id string) (Outcome, error) {
	return c.edit(c.list.Decrement(id))
}

func (c *Controller) edit(_ domain.ListItem, err error) (Outcome, error) {
	if err != nil {
		return c.outcome(nil), err
	}
	c.refreshSuggestions()
	return c.outcome(nil), nil
}

// ViewProduct makes name the current product for later product questions.
func (c *Controller) ViewProduct(name string) Outcome {
	name = strings.TrimSpace(name)
	if name == "" {
		c.feedback = "Which product do you mean?"
		return c.outcome(nil)
	}
	c.selectedProduct = name
	c.feedback = fmt.Sprintf("Viewing %s", name)
	return c.outcome(nil)
}

// SelectedProductDetails returns the catalog record of the viewed product.
func (c *Controller) SelectedProductDetails() (string, domain.ProductDetails, error) {
	if c.selectedProduct == "" {
		return "", domain.ProductDetails{}, domain.ErrNoProductResolved
	}
	details, ok := c.catalog.Product(c.selectedProduct)
	if !ok {
		return c.selectedProduct, domain.ProductDetails{}, fmt.Errorf("%w for %q", domain.ErrNoProductDetails, c.selectedProduct)
	}
	return c.selectedProduct, details, nil
}

func (c *Controller) ClearSearch() Outcome {
	c.searchQuery = ""
	return c.outcome(nil)
}

func (c *Controller) SetLanguage(tag string) (language.Tag, error) {
	matched, err := speech.MatchLanguage(tag)
	if err != nil {
		return c.language, err
	}
	c.language = matched
	log.Infof("language set lang=%s", matched)
	return matched, nil
}

// Interim shows a partial transcript while recognition is in progress.
func (c *Controller) Interim(transcript string) {
	c.transcript = strings.TrimSpace(transcript)
}

// RecognitionFailed reports a recognizer error. The list is left untouched.
func (c *Controller) RecognitionFailed(err error) {
	c.processing = false
	if errors.Is(err, speech.ErrCancelled) {
		c.transcript = ""
		c.feedback = ""
		return
	}
	c.feedback = fmt.Sprintf("Voice error: %v", err)
}

func (c *Controller) Language() language.Tag           { return c.language }
func (c *Controller) Transcript() string               { return c.transcript }
func (c *Controller) Feedback() string                 { return c.feedback }
func (c *Controller) Processing() bool                 { return c.processing }
func (c *Controller) SelectedProduct() string          { return c.selectedProduct }
func (c *Controller) SearchQuery() string              { return c.searchQuery }
func (c *Controller) Items() []domain.ListItem         { return c.list.Items() }
func (c *Controller) Suggestions() []domain.Suggestion { return append([]domain.Suggestion(nil), c.suggestions...) }
func (c *Controller) Catalog() *catalog.Catalog        { return c.catalog }

// Snapshot returns the current render state without changing anything.
func (c *Controller) Snapshot() Outcome {
	return c.outcome(nil)
}

func (c *Controller) refreshSuggestions() {
	c.suggestions = suggest.Generate(c.list.Items(), c.catalog)
}

func (c *Controller) outcome(result domain.Result) Outcome {
	return Outcome{
		Result:      result,
		Feedback:    c.feedback,
		Items:       c.list.Items(),
		Groups:      shoplist.GroupByCategory(c.list.Query(c.searchQuery)),
		Suggestions: c.Suggestions(),
	}
}

func (c *Controller) record(text string, result domain.Result) {
	if c.recorder == nil {
		return
	}
	_, err := c.recorder.Record(domain.InterpretationRecord{
		RawText:  text,
		Intent:   result.Intent(),
		Feedback: c.feedback,
		ListSize: c.list.Len(),
	})
	if err != nil {
		log.Warnf("history record failed err=%v", err)
	}
}
