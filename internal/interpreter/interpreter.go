// Package interpreter turns one raw utterance into one domain.Result.
//
// Matching is a fixed, ordered rule table evaluated against the lower-cased
// utterance; the first rule whose pattern matches produces the result, even
// when a later rule would also match ("show my cart" is a search, "go to
// cart" is navigation). The interpreter keeps no state between calls.
package interpreter

import (
	"fmt"
	"regexp"
	"strings"

	"shoplist/internal/catalog"
	"shoplist/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Context is what the caller knows beyond the utterance itself.
type Context struct {
	CurrentProduct string // product being viewed, if any
	ListSize       int
}

var (
	addRegex      = regexp.MustCompile(`\b(add|buy|i need|i want|need|want)\b`)
	addStripRegex = regexp.MustCompile(`(?i)\b(add|buy|i need|i want|need|want|to my list|to the list)\b`)

	removeRegex      = regexp.MustCompile(`\b(remove|delete|take off|cancel)\b`)
	removeStripRegex = regexp.MustCompile(`(?i)\b(remove|delete|remove from my list|from my list|from the list)\b`)

	clearVerbRegex   = regexp.MustCompile(`\b(clear|empty)\b`)
	clearTargetRegex = regexp.MustCompile(`\b(list|cart)\b`)

	searchRegex      = regexp.MustCompile(`\b(find|search|show me|show)\b`)
	searchStripRegex = regexp.MustCompile(`(?i)\b(find|search|show me|show)\b`)

	navigateRegex      = regexp.MustCompile(`\b(scroll to|go to|navigate to)\b`)
	navigateStripRegex = regexp.MustCompile(`(?i)\b(scroll to|go to|navigate to)\b`)

	showCartRegex = regexp.MustCompile(`\b(show.*cart|open.*cart|go to cart|my cart)\b`)

	productRegex = regexp.MustCompile(`\b(battery|memory|processor|ram|camera|price)\b`)

	fillerRegex = regexp.MustCompile(`(?i)\b(please|hey|ok|could you|would you)\b`)
)

type rule struct {
	intent domain.Intent
	match  func(cmd string) bool
	handle func(cmd, raw string, ctx Context) domain.Result
}

type Interpreter struct {
	catalog *catalog.Catalog
	rules   []rule
}

func New(c *catalog.Catalog) *Interpreter {
	in := &Interpreter{catalog: c}
	in.rules = []rule{
		{domain.IntentAdd, addRegex.MatchString, in.interpretAdd},
		{domain.IntentRemove, removeRegex.MatchString, interpretRemove},
		{domain.IntentClear, matchesClear, interpretClear},
		{domain.IntentSearch, searchRegex.MatchString, interpretSearch},
		{domain.IntentNavigate, navigateRegex.MatchString, interpretNavigate},
		{domain.IntentShowCart, showCartRegex.MatchString, interpretShowCart},
		{domain.IntentProductQuery, productRegex.MatchString, in.interpretProductQuery},
	}
	return in
}

// Rules reports the evaluation order.
func (in *Interpreter) Rules() []domain.Intent {
	out := make([]domain.Intent, 0, len(in.rules))
	for _, r := range in.rules {
		out = append(out, r.intent)
	}
	return out
}

func (in *Interpreter) Interpret(raw string, ctx Context) domain.Result {
	cmd := strings.ToLower(strings.TrimSpace(raw))
	for _, r := range in.rules {
		if r.match(cmd) {
			result := r.handle(cmd, raw, ctx)
			log.Debugf("interpret rule=%s result=%s chars=%d", r.intent, result.Intent(), len(raw))
			return result
		}
	}
	log.Debugf("interpret rule=none chars=%d", len(raw))
	return domain.Unrecognized{RawText: raw, Rule: domain.IntentUnrecognized, Reason: domain.ErrUnrecognized}
}

func (in *Interpreter) interpretAdd(cmd, raw string, _ Context) domain.Result {
	stripped := sanitize(addStripRegex.ReplaceAllString(cmd, ""))
	quantity := ExtractQuantity(stripped)
	name := stripQuantity(stripped)
	if name == "" {
		return domain.Unrecognized{RawText: raw, Rule: domain.IntentAdd, Reason: domain.ErrMissingItemName}
	}
	return domain.AddItem{Name: name, Quantity: quantity}
}

func interpretRemove(cmd, raw string, _ Context) domain.Result {
	stripped := sanitize(removeStripRegex.ReplaceAllString(cmd, ""))
	if stripped == "" {
		return domain.Unrecognized{RawText: raw, Rule: domain.IntentRemove, Reason: domain.ErrMissingRemoveTarget}
	}
	return domain.RemoveItem{Query: stripped}
}

func matchesClear(cmd string) bool {
	return clearVerbRegex.MatchString(cmd) && clearTargetRegex.MatchString(cmd)
}

func interpretClear(_, _ string, _ Context) domain.Result {
	return domain.ClearList{}
}

func interpretSearch(cmd, raw string, _ Context) domain.Result {
	stripped := sanitize(searchStripRegex.ReplaceAllString(cmd, ""))
	if stripped == "" {
		return domain.Unrecognized{RawText: raw, Rule: domain.IntentSearch, Reason: domain.ErrMissingSearchTerm}
	}
	return domain.Search{Query: stripped}
}

func interpretNavigate(cmd, raw string, _ Context) domain.Result {
	stripped := sanitize(navigateStripRegex.ReplaceAllString(cmd, ""))
	if stripped == "" {
		return domain.Unrecognized{RawText: raw, Rule: domain.IntentNavigate, Reason: domain.ErrMissingNavigateTarget}
	}
	return domain.Navigate{Target: stripped}
}

func interpretShowCart(_, _ string, ctx Context) domain.Result {
	return domain.ShowCart{ListSize: ctx.ListSize}
}

func (in *Interpreter) interpretProductQuery(cmd, raw string, ctx Context) domain.Result {
	product, ok := in.catalog.FindProductIn(cmd)
	if !ok {
		product = strings.ToLower(strings.TrimSpace(ctx.CurrentProduct))
	}
	if product == "" {
		return domain.Unrecognized{RawText: raw, Rule: domain.IntentProductQuery, Reason: domain.ErrNoProductResolved}
	}

	details, ok := in.catalog.Product(product)
	if !ok {
		return domain.Unrecognized{
			RawText: raw,
			Rule:    domain.IntentProductQuery,
			Reason:  fmt.Errorf("%w for %q", domain.ErrNoProductDetails, product),
			Product: product,
		}
	}

	switch {
	case strings.Contains(cmd, "battery"):
		return domain.ProductQuery{Product: product, Attribute: domain.AttributeBattery, Value: details.Battery}
	case strings.Contains(cmd, "memory") || strings.Contains(cmd, "ram"):
		return domain.ProductQuery{Product: product, Attribute: domain.AttributeMemory, Value: details.Memory}
	case strings.Contains(cmd, "processor"):
		return domain.ProductQuery{Product: product, Attribute: domain.AttributeProcessor, Value: details.Processor}
	default:
		return domain.ProductQuery{Product: product, Attribute: domain.AttributeAll, Value: FormatDetails(details)}
	}
}

// FormatDetails renders a full product record as key: value pairs.
func FormatDetails(d domain.ProductDetails) string {
	return fmt.Sprintf("battery: %s, memory: %s, processor: %s", d.Battery, d.Memory, d.Processor)
}

func sanitize(s string) string {
	return collapseSpaces(fillerRegex.ReplaceAllString(s, ""))
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
