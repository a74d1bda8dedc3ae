package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

// Variant selects a typographic role.
type Variant string

// Typography variants.
const (
	H1         Variant = "h1"
	H2         Variant = "h2"
	H3         Variant = "h3"
	H4         Variant = "h4"
	H5         Variant = "h5"
	H6         Variant = "h6"
	Title      Variant = "title"
	Lead       Variant = "lead"
	Large      Variant = "large"
	Base       Variant = "base"
	Small      Variant = "small"
	XSmall     Variant = "xsmall"
	Nav        Variant = "nav"
	Caption    Variant = "caption"
	Code       Variant = "code"
	Blockquote Variant = "blockquote"
)

// Variants lists every variant in display order.
func Variants() []Variant {
	return []Variant{H1, H2, H3, H4, H5, H6, Title, Lead, Large, Base, Small, XSmall, Nav, Caption, Code, Blockquote}
}

// Colour names a text colour of the theme.
type Colour string

// Text colours.
const (
	ColourDefault     Colour = "default"
	ColourPrimary     Colour = "primary"
	ColourSecondary   Colour = "secondary"
	ColourAccent      Colour = "accent"
	ColourMuted       Colour = "muted"
	ColourDestructive Colour = "destructive"
	ColourDarkBrown   Colour = "dark-brown"
	ColourMediumBrown Colour = "medium-brown"
	ColourGoldenTan   Colour = "golden-tan"
	ColourLightBlue   Colour = "light-blue"
)

// Colours lists every text colour in display order.
func Colours() []Colour {
	return []Colour{
		ColourDefault, ColourPrimary, ColourSecondary, ColourAccent, ColourMuted,
		ColourDestructive, ColourDarkBrown, ColourMediumBrown, ColourGoldenTan, ColourLightBlue,
	}
}

// Weight overrides the variant's font weight.
type Weight string

// Font weights. A terminal only has faint, regular and bold.
const (
	WeightLight    Weight = "light"
	WeightNormal   Weight = "normal"
	WeightMedium   Weight = "medium"
	WeightSemibold Weight = "semibold"
	WeightBold     Weight = "bold"
)

// Weights lists every weight in display order.
func Weights() []Weight {
	return []Weight{WeightLight, WeightNormal, WeightMedium, WeightSemibold, WeightBold}
}

// Text configures a piece of typography. The zero value renders base text.
type Text struct {
	Variant Variant
	Colour  Colour
	Weight  Weight

	// Muted renders the text in the muted colour unless a colour is set.
	Muted bool

	// Link underlines the text.
	Link bool
}

// Typography returns the lipgloss style for t.
func (s *Styles) Typography(t Text) lipgloss.Style {
	style := s.variantStyle(t.Variant)

	if t.Muted {
		style = style.Foreground(s.theme.Muted)
	}
	if t.Link {
		style = style.Underline(true)
		if !t.Muted {
			style = style.Foreground(s.theme.Primary)
		}
	}
	if t.Colour != "" && t.Colour != ColourDefault {
		style = style.Foreground(s.colour(t.Colour))
	}

	switch t.Weight {
	case WeightLight:
		style = style.Bold(false).Faint(true)
	case WeightNormal, WeightMedium:
		style = style.Bold(false).Faint(false)
	case WeightSemibold, WeightBold:
		style = style.Bold(true).Faint(false)
	}
	return style
}

// Render renders text with t.
func (s *Styles) Render(t Text, text string) string {
	if t.Variant == Caption {
		text = strings.ToUpper(text)
	}
	return s.Typography(t).Render(text)
}

func (s *Styles) variantStyle(v Variant) lipgloss.Style {
	base := lipgloss.NewStyle().Foreground(s.theme.Foreground)

	switch v {
	case H1:
		return base.Bold(true).Underline(true)
	case H2, H3, H4, H5, H6, Title:
		return base.Bold(true)
	case Lead:
		return base.Foreground(s.theme.Muted).Faint(true)
	case Large, Small:
		return base
	case XSmall:
		return base.Faint(true)
	case Nav:
		return base.Foreground(s.theme.Muted)
	case Caption:
		return base.Foreground(s.theme.Muted)
	case Code:
		return base.Foreground(s.theme.Muted).Background(s.theme.Highlight).Padding(0, 1)
	case Blockquote:
		return base.Foreground(s.theme.Muted).
			Italic(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(s.theme.Primary).
			PaddingLeft(1)
	default:
		return base
	}
}

func (s *Styles) colour(c Colour) lipgloss.TerminalColor {
	if s.theme.Name == domain.ThemeMono {
		return lipgloss.NoColor{}
	}
	switch c {
	case ColourPrimary:
		return s.theme.Primary
	case ColourSecondary:
		return s.theme.Secondary
	case ColourAccent:
		return s.theme.Accent
	case ColourMuted:
		return s.theme.Muted
	case ColourDestructive:
		return s.theme.Destructive
	case ColourDarkBrown:
		return DarkBrown
	case ColourMediumBrown:
		return MediumBrown
	case ColourGoldenTan:
		return GoldenTan
	case ColourLightBlue:
		return LightBlue
	default:
		return s.theme.Foreground
	}
}

// Heading renders a heading level from 1 to 6.
func (s *Styles) Heading(level int, text string) string {
	if level < 1 || level > 6 {
		level = 1
	}
	return s.Render(Text{Variant: Variant(fmt.Sprintf("h%d", level))}, text)
}
