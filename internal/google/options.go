// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package google

import "github.com/pdiddy/search-tools/internal/enum"

// Options holds the optional Custom Search parameters. A nil field is not
// sent. Key and cx are injected by the client.
type Options struct {
	// CX overrides the configured search engine identifier.
	CX *string `url:"-"`

	Q                *string           `url:"q,omitempty"`
	C2COff           *C2COff           `url:"c2coff,omitempty"`
	CR               *string           `url:"cr,omitempty"`
	DateRestrict     *string           `url:"dateRestrict,omitempty"`
	ExactTerms       *string           `url:"exactTerms,omitempty"`
	ExcludeTerms     *string           `url:"excludeTerms,omitempty"`
	FileType         *string           `url:"fileType,omitempty"`
	Filter           *Filter           `url:"filter,omitempty"`
	GL               *string           `url:"gl,omitempty"`
	HighRange        *string           `url:"highRange,omitempty"`
	HL               *string           `url:"hl,omitempty"`
	HQ               *string           `url:"hq,omitempty"`
	ImgColorType     *ImgColorType     `url:"imgColorType,omitempty"`
	ImgDominantColor *ImgDominantColor `url:"imgDominantColor,omitempty"`
	ImgSize          *ImgSize          `url:"imgSize,omitempty"`
	ImgType          *ImgType          `url:"imgType,omitempty"`
	LinkSite         *string           `url:"linkSite,omitempty"`
	LowRange         *string           `url:"lowRange,omitempty"`
	LR               *string           `url:"lr,omitempty"`
	Num              *int64            `url:"num,omitempty"`
	OrTerms          *string           `url:"orTerms,omitempty"`
	RelatedSite      *string           `url:"relatedSite,omitempty"`
	Rights           *string           `url:"rights,omitempty"`
	Safe             *Safe             `url:"safe,omitempty"`
	SearchType       *SearchType       `url:"searchType,omitempty"`
	SiteSearch       *string           `url:"siteSearch,omitempty"`
	SiteSearchFilter *SiteSearchFilter `url:"siteSearchFilter,omitempty"`
	Sort             *string           `url:"sort,omitempty"`
	Start            *int64            `url:"start,omitempty"`
}

// C2COff toggles Simplified and Traditional Chinese search.
type C2COff int

const (
	C2COffEnabled C2COff = iota
	C2COffDisabled
)

var C2COffs = enum.New("c2coff",
	enum.Choice[C2COff]{Value: C2COffEnabled, Name: "enabled", Literal: "0"},
	enum.Choice[C2COff]{Value: C2COffDisabled, Name: "disabled", Literal: "1"},
)

func (v C2COff) String() string { return C2COffs.Literal(v) }

// Filter toggles the duplicate content filter.
type Filter int

const (
	FilterOff Filter = iota
	FilterOn
)

var Filters = enum.New("filter",
	enum.Choice[Filter]{Value: FilterOff, Name: "off", Literal: "0"},
	enum.Choice[Filter]{Value: FilterOn, Name: "on", Literal: "1"},
)

func (v Filter) String() string { return Filters.Literal(v) }

// Safe is the SafeSearch level.
type Safe int

const (
	SafeActive Safe = iota
	SafeOff
)

var Safes = enum.New("safe",
	enum.Choice[Safe]{Value: SafeActive, Name: "active", Literal: "active"},
	enum.Choice[Safe]{Value: SafeOff, Name: "off", Literal: "off"},
)

func (v Safe) String() string { return Safes.Literal(v) }

// SearchType selects a specialized search. Omit it for web search.
type SearchType int

const (
	SearchTypeImage SearchType = iota
)

var SearchTypes = enum.New("search-type",
	enum.Choice[SearchType]{Value: SearchTypeImage, Name: "image", Literal: "image"},
)

func (v SearchType) String() string { return SearchTypes.Literal(v) }

// ImgColorType restricts image results by color type.
type ImgColorType int

const (
	ImgColorTypeColor ImgColorType = iota
	ImgColorTypeGray
	ImgColorTypeMono
	ImgColorTypeTrans
)

var ImgColorTypes = enum.New("img-color-type",
	enum.Choice[ImgColorType]{Value: ImgColorTypeColor, Name: "color", Literal: "color"},
	enum.Choice[ImgColorType]{Value: ImgColorTypeGray, Name: "gray", Literal: "gray"},
	enum.Choice[ImgColorType]{Value: ImgColorTypeMono, Name: "mono", Literal: "mono"},
	enum.Choice[ImgColorType]{Value: ImgColorTypeTrans, Name: "trans", Literal: "trans"},
)

func (v ImgColorType) String() string { return ImgColorTypes.Literal(v) }

// ImgDominantColor restricts image results by dominant color.
type ImgDominantColor int

const (
	ImgDominantColorBlack ImgDominantColor = iota
	ImgDominantColorBlue
	ImgDominantColorBrown
	ImgDominantColorGray
	ImgDominantColorGreen
	ImgDominantColorOrange
	ImgDominantColorPink
	ImgDominantColorPurple
	ImgDominantColorRed
	ImgDominantColorTeal
	ImgDominantColorWhite
	ImgDominantColorYellow
)

var ImgDominantColors = enum.New("img-dominant-color",
	enum.Choice[ImgDominantColor]{Value: ImgDominantColorBlack, Name: "black", Literal: "black"},
	enum.Choice[ImgDominantColor]{Value: ImgDominantColorBlue, Name: "blue", Literal: "blue"},
	enum.Choice[ImgDominantColor]{Value: ImgDominantColorBrown, Name: "brown", Literal: "brown"},
	enum.Choice[ImgDominantColor]{Value: ImgDominantColorGray, Name: "gray", Literal: "gray"},
	enum.Choice[ImgDominantColor]{Value: ImgDominantColorGreen, Name: "green", Literal: "green"},
	enum.Choice[ImgDominantColor]{Value: ImgDominantColorOrange, Name: "orange", Literal: "orange"},
	enum.Choice[ImgDominantColor]{Value: ImgDominantColorPink, Name: "pink", Literal: "pink"},
	enum.Choice[ImgDominantColor]{Value: ImgDominantColorPurple, Name: "purple", Literal: "purple"},
	enum.Choice[ImgDominantColor]{Value: ImgDominantColorRed, Name: "red", Literal: "red"},
	enum.Choice[ImgDominantColor]{Value: ImgDominantColorTeal, Name: "teal", Literal: "teal"},
	enum.Choice[ImgDominantColor]{Value: ImgDominantColorWhite, Name: "white", Literal: "white"},
	enum.Choice[ImgDominantColor]{Value: ImgDominantColorYellow, Name: "yellow", Literal: "yellow"},
)

func (v ImgDominantColor) String() string { return ImgDominantColors.Literal(v) }

// ImgSize restricts image results by size.
type ImgSize int

const (
	ImgSizeHuge ImgSize = iota
	ImgSizeIcon
	ImgSizeLarge
	ImgSizeMedium
	ImgSizeSmall
	ImgSizeXLarge
	ImgSizeXXLarge
)

var ImgSizes = enum.New("img-size",
	enum.Choice[ImgSize]{Value: ImgSizeHuge, Name: "huge", Literal: "huge"},
	enum.Choice[ImgSize]{Value: ImgSizeIcon, Name: "icon", Literal: "icon"},
	enum.Choice[ImgSize]{Value: ImgSizeLarge, Name: "large", Literal: "large"},
	enum.Choice[ImgSize]{Value: ImgSizeMedium, Name: "medium", Literal: "medium"},
	enum.Choice[ImgSize]{Value: ImgSizeSmall, Name: "small", Literal: "small"},
	enum.Choice[ImgSize]{Value: ImgSizeXLarge, Name: "xlarge", Literal: "xlarge"},
	enum.Choice[ImgSize]{Value: ImgSizeXXLarge, Name: "xxlarge", Literal: "xxlarge"},
)

func (v ImgSize) String() string { return ImgSizes.Literal(v) }

// ImgType restricts image results by kind.
type ImgType int

const (
	ImgTypeClipart ImgType = iota
	ImgTypeFace
	ImgTypeLineart
	ImgTypeStock
	ImgTypePhoto
	ImgTypeAnimated
)

var ImgTypes = enum.New("img-type",
	enum.Choice[ImgType]{Value: ImgTypeClipart, Name: "clipart", Literal: "clipart"},
	enum.Choice[ImgType]{Value: ImgTypeFace, Name: "face", Literal: "face"},
	enum.Choice[ImgType]{Value: ImgTypeLineart, Name: "lineart", Literal: "lineart"},
	enum.Choice[ImgType]{Value: ImgTypeStock, Name: "stock", Literal: "stock"},
	enum.Choice[ImgType]{Value: ImgTypePhoto, Name: "photo", Literal: "photo"},
	enum.Choice[ImgType]{Value: ImgTypeAnimated, Name: "animated", Literal: "animated"},
)

func (v ImgType) String() string { return ImgTypes.Literal(v) }

// SiteSearchFilter says whether siteSearch includes or excludes its site.
type SiteSearchFilter int

const (
	SiteSearchExclude SiteSearchFilter = iota
	SiteSearchInclude
)

var SiteSearchFilters = enum.New("site-search-filter",
	enum.Choice[SiteSearchFilter]{Value: SiteSearchExclude, Name: "exclude", Literal: "e"},
	enum.Choice[SiteSearchFilter]{Value: SiteSearchInclude, Name: "include", Literal: "i"},
)

func (v SiteSearchFilter) String() string { return SiteSearchFilters.Literal(v) }
