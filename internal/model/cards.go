package model

import (
	"encoding/json"
	"fmt"
)

// Card is one content block inside a section. The concrete type is selected
// by the "type" discriminant in the JSON form. Renderers treat unknown types
// as standard cards, so StandardCard keeps the raw discriminant and writes it
// back on marshal.
type Card interface {
	CardType() string
	Base() *CardBase
}

// Cards decodes a heterogeneous card array by probing each element's "type"
// field before unmarshalling into the matching variant.
type Cards []Card

// TableStyle holds the embedded-<table> styling knobs shared by every card
// variant. They only take effect when the card's body_html contains a <table>.
type TableStyle struct {
	BorderStyle          string `json:"table_border_style,omitempty"`
	BorderColor          string `json:"table_border_color,omitempty"`
	FontSize             int    `json:"table_font_size,omitempty"`
	HeaderBgColor        string `json:"table_header_bg_color,omitempty"`
	HeaderUnderline      int    `json:"table_header_underline,omitempty"`
	HeaderUnderlineColor string `json:"table_header_underline_color,omitempty"`
}

// CardBase carries the fields common to all variants: body, links, the box
// model and the table styling knobs.
type CardBase struct {
	BodyHTML        string   `json:"body_html"`
	Links           []Link   `json:"links"`
	SpacingBottom   int      `json:"spacing_bottom,omitempty"`
	BackgroundColor string   `json:"background_color,omitempty"`
	Padding         *Padding `json:"padding,omitempty"`
	BorderWidth     int      `json:"border_width,omitempty"`
	BorderColor     string   `json:"border_color,omitempty"`
	BorderRadius    int      `json:"border_radius,omitempty"`
	TableStyle
}

// Base exposes the shared fields to code that works over the Card interface.
func (b *CardBase) Base() *CardBase { return b }

// StandardCard is the default variant: crimson accent bar, title, body,
// optional meta line and links. It also renders any card whose type string
// is unrecognized, preserving that string for round-trips.
type StandardCard struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
	CardBase
}

func (c *StandardCard) CardType() string { return c.Type }

// EventCard renders a location label above the title and a date/time meta
// line under it.
type EventCard struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
	CardBase
}

func (c *EventCard) CardType() string { return "event" }

// ResourceCard optionally shows a square icon beside the content in a
// two-column inner table.
type ResourceCard struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
	ShowIcon bool   `json:"show_icon,omitempty"`
	IconURL  string `json:"icon_url,omitempty"`
	IconAlt  string `json:"icon_alt,omitempty"`
	IconSize int    `json:"icon_size,omitempty"`
	CardBase
}

func (c *ResourceCard) CardType() string { return "resource" }

// CTACard is a call-to-action box whose first link renders as a bulletproof
// button.
type CTACard struct {
	Type                    string `json:"type"`
	Title                   string `json:"title"`
	ButtonBgColor           string `json:"button_bg_color,omitempty"`
	ButtonTextColor         string `json:"button_text_color,omitempty"`
	ButtonPaddingVertical   int    `json:"button_padding_vertical,omitempty"`
	ButtonPaddingHorizontal int    `json:"button_padding_horizontal,omitempty"`
	ButtonBorderWidth       int    `json:"button_border_width,omitempty"`
	ButtonBorderColor       string `json:"button_border_color,omitempty"`
	ButtonBorderRadius      int    `json:"button_border_radius,omitempty"`
	ButtonAlignment         string `json:"button_alignment,omitempty"`
	ButtonFullWidth         bool   `json:"button_full_width,omitempty"`
	TextAlignment           string `json:"text_alignment,omitempty"`
	CardBase
}

func (c *CTACard) CardType() string { return "cta" }

// LetterCard is the personal-letter variant: greeting, body, closing and a
// signature block. It has no title and no accent bar.
type LetterCard struct {
	Type                string   `json:"type"`
	Greeting            string   `json:"greeting,omitempty"`
	Closing             string   `json:"closing,omitempty"`
	SignatureName       string   `json:"signature_name,omitempty"`
	SignatureLines      []string `json:"signature_lines,omitempty"`
	SignatureImageURL   string   `json:"signature_image_url,omitempty"`
	SignatureImageAlt   string   `json:"signature_image_alt,omitempty"`
	SignatureImageWidth int      `json:"signature_image_width,omitempty"`
	CardBase
}

func (c *LetterCard) CardType() string { return "letter" }

// UnmarshalJSON dispatches each element on its "type" field. Cards with an
// unknown or missing type decode as standard cards so nothing is dropped.
func (cs *Cards) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	out := make(Cards, 0, len(raws))
	for i, raw := range raws {
		var probe struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			return fmt.Errorf("card %d: %w", i, err)
		}
		var (
			c   Card
			err error
		)
		switch probe.Type {
		case "event":
			v := &EventCard{}
			err = json.Unmarshal(raw, v)
			c = v
		case "resource":
			v := &ResourceCard{}
			err = json.Unmarshal(raw, v)
			c = v
		case "cta":
			v := &CTACard{}
			err = json.Unmarshal(raw, v)
			c = v
		case "letter":
			v := &LetterCard{}
			err = json.Unmarshal(raw, v)
			c = v
		default:
			v := &StandardCard{}
			err = json.Unmarshal(raw, v)
			c = v
		}
		if err != nil {
			return fmt.Errorf("card %d (%s): %w", i, probe.Type, err)
		}
		out = append(out, c)
	}
	*cs = out
	return nil
}
