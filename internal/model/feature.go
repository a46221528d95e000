package model

// Feature is a marketing card in the features grid
type Feature struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Stats       string
}

// Highlight is a headline number shown next to the live chart
type Highlight struct {
	Value string
	Label string
}

// LinkGroup is a footer column
type LinkGroup struct {
	Title string
	Links []string
}
