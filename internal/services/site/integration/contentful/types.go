package contentful

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// PlaceholderImage is served when an entry links an asset that is not included.
const PlaceholderImage = "/images/placeholder.jpg"

// Sys carries Contentful system metadata.
type Sys struct {
	ID       string `json:"id"`
	Type     string `json:"type,omitempty"`
	LinkType string `json:"linkType,omitempty"`
}

// Link references another resource, usually an asset.
type Link struct {
	Sys Sys `json:"sys"`
}

// Entry is one product entry.
type Entry struct {
	Sys    Sys           `json:"sys"`
	Fields ProductFields `json:"fields"`
}

// ProductFields are the fields of the product content type.
type ProductFields struct {
	ProductID       string   `json:"productId"`
	Title           string   `json:"title"`
	CategoryID      string   `json:"categoryId"`
	CategoryName    string   `json:"categoryName"`
	Description     string   `json:"description"`
	FullDescription RichText `json:"fullDescription"`
	Features        []string `json:"features"`
	Specifications  []string `json:"specifications"`
	Images          []Link   `json:"images"`
}

// Asset is an included media asset.
type Asset struct {
	Sys    Sys         `json:"sys"`
	Fields AssetFields `json:"fields"`
}

// AssetFields describe an asset file.
type AssetFields struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	File        AssetFile `json:"file"`
}

// AssetFile locates the binary behind an asset.
type AssetFile struct {
	URL         string `json:"url"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

// Products is the merged result of every fetched page.
type Products struct {
	Total  int
	Items  []Entry
	Assets []Asset
}

type entriesResponse struct {
	Total    int     `json:"total"`
	Skip     int     `json:"skip"`
	Limit    int     `json:"limit"`
	Items    []Entry `json:"items"`
	Includes struct {
		Asset []Asset `json:"Asset"`
	} `json:"includes"`
}

type errorResponse struct {
	Sys     Sys    `json:"sys"`
	Message string `json:"message"`
}

// Node is a rich text document node.
type Node struct {
	NodeType string `json:"nodeType"`
	Value    string `json:"value,omitempty"`
	Content  []Node `json:"content,omitempty"`
}

// RichText holds a field that is either a plain string or a rich text document.
type RichText struct {
	Plain    string
	Document *Node
}

// UnmarshalJSON accepts both field shapes.
func (r *RichText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = RichText{}
		return nil
	}
	if data[0] == '"' {
		var plain string
		if err := json.Unmarshal(data, &plain); err != nil {
			return fmt.Errorf("decode rich text string: %w", err)
		}
		*r = RichText{Plain: plain}
		return nil
	}
	var doc Node
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode rich text document: %w", err)
	}
	*r = RichText{Document: &doc}
	return nil
}

// MarshalJSON writes the field back in the shape it was read.
func (r RichText) MarshalJSON() ([]byte, error) {
	if r.Document != nil {
		return json.Marshal(r.Document)
	}
	if r.Plain == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.Plain)
}

// Text flattens the field to plain text.
//
// Document paragraphs become the concatenation of their text values and are
// joined by blank lines. Non-paragraph nodes and empty paragraphs are dropped.
func (r RichText) Text() string {
	if r.Document == nil {
		return r.Plain
	}
	paragraphs := make([]string, 0, len(r.Document.Content))
	for _, block := range r.Document.Content {
		if block.NodeType != "paragraph" {
			continue
		}
		var text strings.Builder
		for _, child := range block.Content {
			text.WriteString(child.Value)
		}
		if text.Len() > 0 {
			paragraphs = append(paragraphs, text.String())
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

// ImageURL resolves an asset id to an absolute image URL.
//
// Protocol-relative URLs get an https scheme. Unknown assets resolve to
// PlaceholderImage.
func ImageURL(assetID string, assets []Asset) string {
	for _, asset := range assets {
		if asset.Sys.ID != assetID {
			continue
		}
		url := strings.TrimSpace(asset.Fields.File.URL)
		switch {
		case url == "":
			return PlaceholderImage
		case strings.HasPrefix(url, "//"):
			return "https:" + url
		default:
			return url
		}
	}
	return PlaceholderImage
}
