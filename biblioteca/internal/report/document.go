package report

// Element is one block of a report page, laid out top to bottom.
type Element interface {
	element()
}

type Heading struct {
	Text string
}

type Paragraph struct {
	Text string
}

// Spacer is vertical space in inches.
type Spacer struct {
	Height float64
}

type Table struct {
	Header []string
	Rows   [][]string
}

// Image is a PNG placed at Width x Height inches, centered.
type Image struct {
	PNG    []byte
	Width  float64
	Height float64
}

func (Heading) element()   {}
func (Paragraph) element() {}
func (Spacer) element()    {}
func (Table) element()     {}
func (Image) element()     {}

type Document struct {
	Elements []Element
}

func (d *Document) Add(elements ...Element) {
	d.Elements = append(d.Elements, elements...)
}

const titleGap = 0.2
