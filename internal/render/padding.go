package render

import "newsletter-studio/internal/model"

// ResolvePadding computes the effective padding box for a card by folding an
// ordered list of partial override sources, later sources winning key-wise:
//
//	{20,20,20,20} floor
//	-> global settings (padding_image for icon resource cards, padding_text
//	   otherwise)
//	-> section layout (same image/text branch)
//	-> the card's own padding override
//
// The merge is per side, never whole-box replacement: a source that sets only
// `left` leaves the other three sides alone.
func ResolvePadding(card model.Card, section *model.Section, settings *model.Settings) model.Box {
	box := model.Box{Top: 20, Right: 20, Bottom: 20, Left: 20}

	image := usesImagePadding(card)

	if settings != nil {
		if image {
			merge(&box, settings.PaddingImage)
		} else {
			merge(&box, settings.PaddingText)
		}
	}

	if section != nil {
		if image && section.Layout.PaddingImage != nil {
			merge(&box, section.Layout.PaddingImage)
		} else {
			merge(&box, section.Layout.PaddingText)
		}
	}

	merge(&box, card.Base().Padding)

	return box
}

// Icon resource cards align against the global image padding instead of the
// text padding.
func usesImagePadding(card model.Card) bool {
	rc, ok := card.(*model.ResourceCard)
	return ok && rc.ShowIcon
}

func merge(box *model.Box, p *model.Padding) {
	if p == nil {
		return
	}
	if p.Top != nil {
		box.Top = *p.Top
	}
	if p.Right != nil {
		box.Right = *p.Right
	}
	if p.Bottom != nil {
		box.Bottom = *p.Bottom
	}
	if p.Left != nil {
		box.Left = *p.Left
	}
}
