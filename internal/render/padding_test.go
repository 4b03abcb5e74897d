package render

import (
	"testing"

	"newsletter-studio/internal/model"
)

func TestResolvePaddingFloorDefault(t *testing.T) {
	card := &model.StandardCard{Type: "standard"}
	got := ResolvePadding(card, nil, nil)
	want := model.Box{Top: 20, Right: 20, Bottom: 20, Left: 20}
	if got != want {
		t.Fatalf("expected floor default %+v, got %+v", want, got)
	}
}

func TestResolvePaddingPrecedence(t *testing.T) {
	settings := &model.Settings{
		PaddingText: model.Pad(1, 1, 1, 1),
	}
	section := &model.Section{
		Layout: model.SectionLayout{
			PaddingText: model.Pad(2, 2, 2, 2),
		},
	}
	card := &model.StandardCard{
		Type: "standard",
		CardBase: model.CardBase{
			Padding: &model.Padding{Top: model.Int(3)},
		},
	}

	got := ResolvePadding(card, section, settings)
	// Card wins on top, section wins elsewhere.
	want := model.Box{Top: 3, Right: 2, Bottom: 2, Left: 2}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestResolvePaddingKeywiseMerge(t *testing.T) {
	settings := &model.Settings{
		PaddingText: &model.Padding{Left: model.Int(5)},
	}
	card := &model.StandardCard{Type: "standard"}

	got := ResolvePadding(card, nil, settings)
	// Only left is overridden; the other sides keep the floor default.
	want := model.Box{Top: 20, Right: 20, Bottom: 20, Left: 5}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestResolvePaddingIconBranch(t *testing.T) {
	settings := &model.Settings{
		PaddingText:  model.Pad(11, 11, 11, 11),
		PaddingImage: model.Pad(7, 7, 7, 7),
	}

	withIcon := &model.ResourceCard{Type: "resource", ShowIcon: true}
	if got := ResolvePadding(withIcon, nil, settings); got != (model.Box{Top: 7, Right: 7, Bottom: 7, Left: 7}) {
		t.Errorf("icon resource card should use padding_image, got %+v", got)
	}

	noIcon := &model.ResourceCard{Type: "resource", ShowIcon: false}
	if got := ResolvePadding(noIcon, nil, settings); got != (model.Box{Top: 11, Right: 11, Bottom: 11, Left: 11}) {
		t.Errorf("iconless resource card should use padding_text, got %+v", got)
	}
}

func TestResolvePaddingExplicitZero(t *testing.T) {
	card := &model.StandardCard{
		Type: "standard",
		CardBase: model.CardBase{
			Padding: model.Pad(0, 0, 0, 0),
		},
	}
	got := ResolvePadding(card, nil, nil)
	if got != (model.Box{}) {
		t.Fatalf("explicit zero padding must be honored, got %+v", got)
	}
}
