package notion

// Block is a Notion content block. One variant is populated according to
// Type, mirroring the wire format.
type Block struct {
	Object     string         `json:"object,omitempty"`
	Type       string         `json:"type"`
	Paragraph  *RichTextBlock `json:"paragraph,omitempty"`
	Heading1   *RichTextBlock `json:"heading_1,omitempty"`
	Heading2   *RichTextBlock `json:"heading_2,omitempty"`
	Heading3   *RichTextBlock `json:"heading_3,omitempty"`
	Callout    *CalloutBlock  `json:"callout,omitempty"`
	ColumnList *ColumnList    `json:"column_list,omitempty"`
	Column     *Column        `json:"column,omitempty"`
	Divider    *struct{}      `json:"divider,omitempty"`
	LinkToPage *LinkToPage    `json:"link_to_page,omitempty"`
}

// RichTextBlock is the payload of paragraph and heading blocks.
type RichTextBlock struct {
	RichText []RichText `json:"rich_text"`
}

// CalloutBlock is a callout with an emoji icon.
type CalloutBlock struct {
	RichText []RichText `json:"rich_text"`
	Icon     *Icon      `json:"icon,omitempty"`
}

// Icon is a block icon; only emoji icons are used here.
type Icon struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji,omitempty"`
}

// ColumnList holds side-by-side columns.
type ColumnList struct {
	Children []Block `json:"children,omitempty"`
}

// Column is one column of a column list.
type Column struct {
	Children []Block `json:"children,omitempty"`
}

// LinkToPage links to an existing page or database.
type LinkToPage struct {
	Type       string `json:"type"`
	PageID     string `json:"page_id,omitempty"`
	DatabaseID string `json:"database_id,omitempty"`
}

// Paragraph builds a paragraph block from plain text.
func Paragraph(s string) Block {
	return Block{Object: "block", Type: "paragraph", Paragraph: &RichTextBlock{RichText: Text(s)}}
}

// ParagraphRich builds a paragraph block from prepared rich text.
func ParagraphRich(rt []RichText) Block {
	return Block{Object: "block", Type: "paragraph", Paragraph: &RichTextBlock{RichText: rt}}
}

// Heading2 builds a level-2 heading block.
func Heading2(s string) Block {
	return Block{Object: "block", Type: "heading_2", Heading2: &RichTextBlock{RichText: Text(s)}}
}

// Heading3 builds a level-3 heading block.
func Heading3(s string) Block {
	return Block{Object: "block", Type: "heading_3", Heading3: &RichTextBlock{RichText: Text(s)}}
}

// Callout builds a callout block with an emoji icon.
func Callout(emoji, s string) Block {
	return Block{
		Object:  "block",
		Type:    "callout",
		Callout: &CalloutBlock{RichText: Text(s), Icon: &Icon{Type: "emoji", Emoji: emoji}},
	}
}

// CalloutRich builds a callout block from prepared rich text.
func CalloutRich(emoji string, rt []RichText) Block {
	return Block{
		Object:  "block",
		Type:    "callout",
		Callout: &CalloutBlock{RichText: rt, Icon: &Icon{Type: "emoji", Emoji: emoji}},
	}
}

// Divider builds a divider block.
func Divider() Block {
	return Block{Object: "block", Type: "divider", Divider: &struct{}{}}
}

// Columns builds a column list with one column per child slice.
func Columns(cols ...[]Block) Block {
	children := make([]Block, len(cols))
	for i, col := range cols {
		children[i] = Block{Object: "block", Type: "column", Column: &Column{Children: col}}
	}
	return Block{Object: "block", Type: "column_list", ColumnList: &ColumnList{Children: children}}
}

// DatabaseLink builds a link block to an existing database.
func DatabaseLink(databaseID string) Block {
	return Block{
		Object:     "block",
		Type:       "link_to_page",
		LinkToPage: &LinkToPage{Type: "database_id", DatabaseID: databaseID},
	}
}
