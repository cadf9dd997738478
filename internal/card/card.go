// Package card builds the display fragment for a single person record.
package card

import (
	"strconv"

	"golang.org/x/net/html"

	"cardwall/internal/dom"
	"cardwall/internal/locale"
	"cardwall/internal/model"
)

// NotAvailable is the display value for absent optional fields.
const NotAvailable = "N/A"

// Build constructs the card fragment for rec.
//
// The fragment is a detached <article> element; the caller decides where
// it is appended. Field layout:
//
//	<article class="card" data-id="...">
//	  <h2 class="name">        name
//	  <p class="greeting">     greeting derived from name
//	  <dl class="facts">       age, address, status, score, birthdate
//	  <ul class="skills">      one <li> per skill, input order
//	</article>
//
// Absent status and score display as "N/A". Build performs no validation;
// whatever the record holds is what the card shows.
func Build(rec model.Record, f *locale.Formatter) *html.Node {
	root := dom.Element("article",
		dom.Attr{Key: "class", Val: "card"},
		dom.Attr{Key: "data-id", Val: strconv.FormatInt(rec.ID, 10)},
	)

	name := dom.Element("h2", dom.Attr{Key: "class", Val: "name"})
	name.AppendChild(dom.Text(rec.Name))
	root.AppendChild(name)

	greeting := dom.Element("p", dom.Attr{Key: "class", Val: "greeting"})
	greeting.AppendChild(dom.Text(rec.Greeting()))
	root.AppendChild(greeting)

	facts := dom.Element("dl", dom.Attr{Key: "class", Val: "facts"})
	appendFact(facts, "Age", strconv.FormatInt(rec.Age, 10))
	appendFact(facts, "Address", rec.Address.Display())
	appendFact(facts, "Status", stringOr(rec.Status))
	appendFact(facts, "Score", intOr(rec.Score))
	appendFact(facts, "Born", f.FormatDate(rec.Birthdate))
	root.AppendChild(facts)

	skills := dom.Element("ul", dom.Attr{Key: "class", Val: "skills"})
	for _, skill := range rec.Skills {
		li := dom.Element("li")
		li.AppendChild(dom.Text(skill))
		skills.AppendChild(li)
	}
	root.AppendChild(skills)

	return root
}

// appendFact adds one <dt>label</dt><dd>value</dd> pair to a facts list.
func appendFact(dl *html.Node, label, value string) {
	dt := dom.Element("dt")
	dt.AppendChild(dom.Text(label))
	dl.AppendChild(dt)

	dd := dom.Element("dd")
	dd.AppendChild(dom.Text(value))
	dl.AppendChild(dd)
}

// stringOr resolves an optional string to its display value.
func stringOr(s *string) string {
	if s == nil {
		return NotAvailable
	}
	return *s
}

// intOr resolves an optional integer to its display value.
func intOr(n *int64) string {
	if n == nil {
		return NotAvailable
	}
	return strconv.FormatInt(*n, 10)
}
