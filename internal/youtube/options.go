// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package youtube

import "github.com/pdiddy/search-tools/internal/enum"

// DefaultPart is sent when the caller gives no part.
const DefaultPart = "snippet"

// Options holds the optional search.list parameters. A nil field is not
// sent. Key and part are injected by the client.
type Options struct {
	// Part is the comma-separated list of resource properties. Empty means
	// DefaultPart.
	Part string `url:"-"`

	ChannelID                 *string                    `url:"channelId,omitempty"`
	ChannelType               *ChannelType               `url:"channelType,omitempty"`
	EventType                 *EventType                 `url:"eventType,omitempty"`
	Location                  *string                    `url:"location,omitempty"`
	LocationRadius            *string                    `url:"locationRadius,omitempty"`
	MaxResults                *int64                     `url:"maxResults,omitempty"`
	OnBehalfOfContentOwner    *string                    `url:"onBehalfOfContentOwner,omitempty"`
	Order                     *Order                     `url:"order,omitempty"`
	PageToken                 *string                    `url:"pageToken,omitempty"`
	PublishedAfter            *string                    `url:"publishedAfter,omitempty"`
	PublishedBefore           *string                    `url:"publishedBefore,omitempty"`
	Q                         *string                    `url:"q,omitempty"`
	RegionCode                *string                    `url:"regionCode,omitempty"`
	RelevanceLanguage         *string                    `url:"relevanceLanguage,omitempty"`
	SafeSearch                *SafeSearch                `url:"safeSearch,omitempty"`
	TopicID                   *Topic                     `url:"topicId,omitempty"`
	Type                      *Type                      `url:"type,omitempty"`
	VideoCaption              *VideoCaption              `url:"videoCaption,omitempty"`
	VideoCategoryID           *string                    `url:"videoCategoryId,omitempty"`
	VideoDefinition           *VideoDefinition           `url:"videoDefinition,omitempty"`
	VideoDimension            *VideoDimension            `url:"videoDimension,omitempty"`
	VideoDuration             *VideoDuration             `url:"videoDuration,omitempty"`
	VideoEmbeddable           *VideoEmbeddable           `url:"videoEmbeddable,omitempty"`
	VideoLicense              *VideoLicense              `url:"videoLicense,omitempty"`
	VideoPaidProductPlacement *VideoPaidProductPlacement `url:"videoPaidProductPlacement,omitempty"`
	VideoSyndicated           *VideoSyndicated           `url:"videoSyndicated,omitempty"`
	VideoType                 *VideoType                 `url:"videoType,omitempty"`
}

type ChannelType int

const (
	ChannelTypeAny ChannelType = iota
	ChannelTypeShow
)

var ChannelTypes = enum.New("channel-type",
	enum.Choice[ChannelType]{Value: ChannelTypeAny, Name: "any", Literal: "any"},
	enum.Choice[ChannelType]{Value: ChannelTypeShow, Name: "show", Literal: "show"},
)

func (v ChannelType) String() string { return ChannelTypes.Literal(v) }

// EventType restricts a search to broadcast events. Requires type=video.
type EventType int

const (
	EventTypeCompleted EventType = iota
	EventTypeLive
	EventTypeUpcoming
)

var EventTypes = enum.New("event-type",
	enum.Choice[EventType]{Value: EventTypeCompleted, Name: "completed", Literal: "completed"},
	enum.Choice[EventType]{Value: EventTypeLive, Name: "live", Literal: "live"},
	enum.Choice[EventType]{Value: EventTypeUpcoming, Name: "upcoming", Literal: "upcoming"},
)

func (v EventType) String() string { return EventTypes.Literal(v) }

// Order is the result ordering.
type Order int

const (
	OrderDate Order = iota
	OrderRating
	OrderRelevance
	OrderTitle
	OrderVideoCount
	OrderViewCount
)

var Orders = enum.New("order",
	enum.Choice[Order]{Value: OrderDate, Name: "date", Literal: "date"},
	enum.Choice[Order]{Value: OrderRating, Name: "rating", Literal: "rating"},
	enum.Choice[Order]{Value: OrderRelevance, Name: "relevance", Literal: "relevance"},
	enum.Choice[Order]{Value: OrderTitle, Name: "title", Literal: "title"},
	enum.Choice[Order]{Value: OrderVideoCount, Name: "video-count", Literal: "videoCount"},
	enum.Choice[Order]{Value: OrderViewCount, Name: "view-count", Literal: "viewCount"},
)

func (v Order) String() string { return Orders.Literal(v) }

type SafeSearch int

const (
	SafeSearchModerate SafeSearch = iota
	SafeSearchNone
	SafeSearchStrict
)

var SafeSearches = enum.New("safe-search",
	enum.Choice[SafeSearch]{Value: SafeSearchModerate, Name: "moderate", Literal: "moderate"},
	enum.Choice[SafeSearch]{Value: SafeSearchNone, Name: "none", Literal: "none"},
	enum.Choice[SafeSearch]{Value: SafeSearchStrict, Name: "strict", Literal: "strict"},
)

func (v SafeSearch) String() string { return SafeSearches.Literal(v) }

// Type restricts results to one resource kind.
type Type int

const (
	TypeChannel Type = iota
	TypePlaylist
	TypeVideo
)

var Types = enum.New("type",
	enum.Choice[Type]{Value: TypeChannel, Name: "channel", Literal: "channel"},
	enum.Choice[Type]{Value: TypePlaylist, Name: "playlist", Literal: "playlist"},
	enum.Choice[Type]{Value: TypeVideo, Name: "video", Literal: "video"},
)

func (v Type) String() string { return Types.Literal(v) }

type VideoCaption int

const (
	VideoCaptionAny VideoCaption = iota
	VideoCaptionClosedCaption
	VideoCaptionNone
)

var VideoCaptions = enum.New("video-caption",
	enum.Choice[VideoCaption]{Value: VideoCaptionAny, Name: "any", Literal: "any"},
	enum.Choice[VideoCaption]{Value: VideoCaptionClosedCaption, Name: "closed-caption", Literal: "closedCaption"},
	enum.Choice[VideoCaption]{Value: VideoCaptionNone, Name: "none", Literal: "none"},
)

func (v VideoCaption) String() string { return VideoCaptions.Literal(v) }

type VideoDefinition int

const (
	VideoDefinitionAny VideoDefinition = iota
	VideoDefinitionHigh
	VideoDefinitionStandard
)

var VideoDefinitions = enum.New("video-definition",
	enum.Choice[VideoDefinition]{Value: VideoDefinitionAny, Name: "any", Literal: "any"},
	enum.Choice[VideoDefinition]{Value: VideoDefinitionHigh, Name: "high", Literal: "high"},
	enum.Choice[VideoDefinition]{Value: VideoDefinitionStandard, Name: "standard", Literal: "standard"},
)

func (v VideoDefinition) String() string { return VideoDefinitions.Literal(v) }

type VideoDimension int

const (
	VideoDimensionAny VideoDimension = iota
	VideoDimension2D
	VideoDimension3D
)

var VideoDimensions = enum.New("video-dimension",
	enum.Choice[VideoDimension]{Value: VideoDimensionAny, Name: "any", Literal: "any"},
	enum.Choice[VideoDimension]{Value: VideoDimension2D, Name: "2d", Literal: "2d"},
	enum.Choice[VideoDimension]{Value: VideoDimension3D, Name: "3d", Literal: "3d"},
)

func (v VideoDimension) String() string { return VideoDimensions.Literal(v) }

// VideoDuration buckets: short is under 4 minutes, long is over 20.
type VideoDuration int

const (
	VideoDurationAny VideoDuration = iota
	VideoDurationLong
	VideoDurationMedium
	VideoDurationShort
)

var VideoDurations = enum.New("video-duration",
	enum.Choice[VideoDuration]{Value: VideoDurationAny, Name: "any", Literal: "any"},
	enum.Choice[VideoDuration]{Value: VideoDurationLong, Name: "long", Literal: "long"},
	enum.Choice[VideoDuration]{Value: VideoDurationMedium, Name: "medium", Literal: "medium"},
	enum.Choice[VideoDuration]{Value: VideoDurationShort, Name: "short", Literal: "short"},
)

func (v VideoDuration) String() string { return VideoDurations.Literal(v) }

type VideoEmbeddable int

const (
	VideoEmbeddableAny VideoEmbeddable = iota
	VideoEmbeddableTrue
)

var VideoEmbeddables = enum.New("video-embeddable",
	enum.Choice[VideoEmbeddable]{Value: VideoEmbeddableAny, Name: "any", Literal: "any"},
	enum.Choice[VideoEmbeddable]{Value: VideoEmbeddableTrue, Name: "true", Literal: "true"},
)

func (v VideoEmbeddable) String() string { return VideoEmbeddables.Literal(v) }

type VideoLicense int

const (
	VideoLicenseAny VideoLicense = iota
	VideoLicenseCreativeCommon
	VideoLicenseYouTube
)

var VideoLicenses = enum.New("video-license",
	enum.Choice[VideoLicense]{Value: VideoLicenseAny, Name: "any", Literal: "any"},
	enum.Choice[VideoLicense]{Value: VideoLicenseCreativeCommon, Name: "creative-common", Literal: "creativeCommon"},
	enum.Choice[VideoLicense]{Value: VideoLicenseYouTube, Name: "youtube", Literal: "youtube"},
)

func (v VideoLicense) String() string { return VideoLicenses.Literal(v) }

type VideoPaidProductPlacement int

const (
	VideoPaidProductPlacementAny VideoPaidProductPlacement = iota
	VideoPaidProductPlacementTrue
)

var VideoPaidProductPlacements = enum.New("video-paid-product-placement",
	enum.Choice[VideoPaidProductPlacement]{Value: VideoPaidProductPlacementAny, Name: "any", Literal: "any"},
	enum.Choice[VideoPaidProductPlacement]{Value: VideoPaidProductPlacementTrue, Name: "true", Literal: "true"},
)

func (v VideoPaidProductPlacement) String() string { return VideoPaidProductPlacements.Literal(v) }

type VideoSyndicated int

const (
	VideoSyndicatedAny VideoSyndicated = iota
	VideoSyndicatedTrue
)

var VideoSyndicateds = enum.New("video-syndicated",
	enum.Choice[VideoSyndicated]{Value: VideoSyndicatedAny, Name: "any", Literal: "any"},
	enum.Choice[VideoSyndicated]{Value: VideoSyndicatedTrue, Name: "true", Literal: "true"},
)

func (v VideoSyndicated) String() string { return VideoSyndicateds.Literal(v) }

type VideoType int

const (
	VideoTypeAny VideoType = iota
	VideoTypeEpisode
	VideoTypeMovie
)

var VideoTypes = enum.New("video-type",
	enum.Choice[VideoType]{Value: VideoTypeAny, Name: "any", Literal: "any"},
	enum.Choice[VideoType]{Value: VideoTypeEpisode, Name: "episode", Literal: "episode"},
	enum.Choice[VideoType]{Value: VideoTypeMovie, Name: "movie", Literal: "movie"},
)

func (v VideoType) String() string { return VideoTypes.Literal(v) }
