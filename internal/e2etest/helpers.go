package e2etest

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// FindFieldForLabel finds the input, select, or textarea associated with a
// label in the given form.
func FindFieldForLabel(form *goquery.Selection, labelText string) (*goquery.Selection, error) {
	label := form.Find(fmt.Sprintf("label:contains('%s')", labelText))
	if label.Length() == 0 {
		return nil, fmt.Errorf("label not found: %s", labelText)
	}

	var field *goquery.Selection
	if id, exists := label.Attr("for"); exists {
		// If label has 'for' attribute, find the field by ID.
		field = form.Find(fmt.Sprintf("input#%s,select#%s,textarea#%s", id, id, id))
	} else {
		// Otherwise, find the field within the label.
		field = label.Find("input,select,textarea")
	}

	if field.Length() == 0 {
		return nil, fmt.Errorf("field not found for label: %s", labelText)
	}

	return field.First(), nil
}

// FindForm finds a form in the doc identified with action formActionUrlPath and returns the form selection.
func FindForm(doc *goquery.Document, formActionURLPath string) (*goquery.Selection, error) {
	form := doc.Find(fmt.Sprintf("form[action='%s']", formActionURLPath))
	if form.Length() == 0 {
		return nil, fmt.Errorf("form not found: %s", formActionURLPath)
	}
	return form, nil
}
