package domain

// Template describes the look of a rendered invoice.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	HeaderColor string `json:"headerColor"`
	FontFamily  string `json:"fontFamily"`
}

var invoiceTemplates = []Template{
	{ID: "template-1", Name: "Professional", Description: "Clean and professional template", HeaderColor: "#667eea", FontFamily: "Arial, sans-serif"},
	{ID: "template-2", Name: "Modern", Description: "Modern and minimalist design", HeaderColor: "#10b981", FontFamily: "Helvetica, sans-serif"},
	{ID: "template-3", Name: "Corporate", Description: "Traditional corporate style", HeaderColor: "#1f2937", FontFamily: "Times New Roman, serif"},
}

// Templates returns the built-in invoice templates. The first one is the default.
func Templates() []Template {
	out := make([]Template, len(invoiceTemplates))
	copy(out, invoiceTemplates)
	return out
}

// DefaultTemplateID is the template assigned to invoices created without one.
func DefaultTemplateID() string {
	return invoiceTemplates[0].ID
}

// LookupTemplate finds a built-in template by id.
func LookupTemplate(id string) (Template, bool) {
	for _, t := range invoiceTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
