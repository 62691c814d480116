package export

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// Element paths within the export document. Quotations sit arbitrarily deep
// under primDoc, so those segments use descendant search.
var (
	codePath      = etree.MustCompilePath("./codes/code")
	quotationPath = etree.MustCompilePath(".//primDoc//quotations/q")
	familyPath    = etree.MustCompilePath("./families/codeFamilies/codeFamily")
	itemPath      = etree.MustCompilePath("./item")
	codingPath    = etree.MustCompilePath("./links/objectSegmentLinks/codings/iLink")
)

// ParseFile reads and parses the export document at path.
func ParseFile(path string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("failed to read export %s: %w", path, err)
	}
	parsed, err := parse(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse export %s: %w", path, err)
	}
	return parsed, nil
}

// Parse parses an export document from r.
func Parse(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}
	return parse(doc)
}

func parse(doc *etree.Document) (*Document, error) {
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("export has no root element")
	}

	out := &Document{}

	for _, el := range root.FindElementsPath(codePath) {
		id, err := requireAttr(el, "id")
		if err != nil {
			return nil, err
		}
		name, err := requireAttr(el, "name")
		if err != nil {
			return nil, err
		}
		out.Codes = append(out.Codes, Code{ID: id, Name: name})
	}

	for _, el := range root.FindElementsPath(quotationPath) {
		id, err := requireAttr(el, "id")
		if err != nil {
			return nil, err
		}
		name, err := requireAttr(el, "name")
		if err != nil {
			return nil, err
		}
		out.Quotations = append(out.Quotations, Quotation{ID: id, Name: name})
	}

	for _, el := range root.FindElementsPath(familyPath) {
		id, err := requireAttr(el, "id")
		if err != nil {
			return nil, err
		}
		name, err := requireAttr(el, "name")
		if err != nil {
			return nil, err
		}
		fam := Family{ID: id, Name: name}
		for _, item := range el.FindElementsPath(itemPath) {
			memberID, err := requireAttr(item, "id")
			if err != nil {
				return nil, err
			}
			fam.Members = append(fam.Members, memberID)
		}
		out.Families = append(out.Families, fam)
	}

	for _, el := range root.FindElementsPath(codingPath) {
		codeID, err := requireAttr(el, "obj")
		if err != nil {
			return nil, err
		}
		quotationID, err := requireAttr(el, "qRef")
		if err != nil {
			return nil, err
		}
		out.Codings = append(out.Codings, Coding{CodeID: codeID, QuotationID: quotationID})
	}

	return out, nil
}

// requireAttr returns the value of a mandatory attribute. A missing
// attribute is an input error, not something to default around.
func requireAttr(el *etree.Element, name string) (string, error) {
	attr := el.SelectAttr(name)
	if attr == nil {
		return "", fmt.Errorf("<%s> element missing required %q attribute", el.Tag, name)
	}
	return attr.Value, nil
}
