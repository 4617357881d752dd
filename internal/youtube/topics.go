// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package youtube

import "github.com/pdiddy/search-tools/internal/enum"

// Topic is a Freebase topic identifier accepted by topicId.
type Topic int

const (
	TopicMusic Topic = iota
	TopicChristianMusic
	TopicClassicalMusic
	TopicCountry
	TopicElectronicMusic
	TopicHipHopMusic
	TopicIndependentMusic
	TopicJazz
	TopicMusicOfAsia
	TopicMusicOfLatinAmerica
	TopicPopMusic
	TopicReggae
	TopicRhythmAndBlues
	TopicRockMusic
	TopicSoulMusic
	TopicGaming
	TopicActionGame
	TopicActionAdventureGame
	TopicCasualGame
	TopicMusicVideoGame
	TopicPuzzleVideoGame
	TopicRacingVideoGame
	TopicRolePlayingVideoGame
	TopicSimulationVideoGame
	TopicSportsVideoGame
	TopicStrategyVideoGame
	TopicSports
	TopicAmericanFootball
	TopicBaseball
	TopicBasketball
	TopicBoxing
	TopicCricket
	TopicFootball
	TopicGolf
	TopicIceHockey
	TopicMixedMartialArts
	TopicMotorsport
	TopicTennis
	TopicVolleyball
	TopicEntertainment
	TopicHumor
	TopicMovies
	TopicPerformingArts
	TopicProfessionalWrestling
	TopicTVShows
	TopicLifestyle
	TopicFashion
	TopicFitness
	TopicFood
	TopicHobby
	TopicPets
	TopicPhysicalAttractiveness
	TopicTechnology
	TopicTourism
	TopicVehicles
	TopicSociety
	TopicBusiness
	TopicHealth
	TopicMilitary
	TopicPolitics
	TopicReligion
	TopicKnowledge
)

var Topics = enum.New("topic",
	enum.Choice[Topic]{Value: TopicMusic, Name: "music", Literal: "/m/04rlf"},
	enum.Choice[Topic]{Value: TopicChristianMusic, Name: "christian-music", Literal: "/m/02mscn"},
	enum.Choice[Topic]{Value: TopicClassicalMusic, Name: "classical-music", Literal: "/m/0ggq0m"},
	enum.Choice[Topic]{Value: TopicCountry, Name: "country", Literal: "/m/01lyv"},
	enum.Choice[Topic]{Value: TopicElectronicMusic, Name: "electronic-music", Literal: "/m/02lkt"},
	enum.Choice[Topic]{Value: TopicHipHopMusic, Name: "hip-hop-music", Literal: "/m/0glt670"},
	enum.Choice[Topic]{Value: TopicIndependentMusic, Name: "independent-music", Literal: "/m/05rwpb"},
	enum.Choice[Topic]{Value: TopicJazz, Name: "jazz", Literal: "/m/03_d0"},
	enum.Choice[Topic]{Value: TopicMusicOfAsia, Name: "music-of-asia", Literal: "/m/028sqc"},
	enum.Choice[Topic]{Value: TopicMusicOfLatinAmerica, Name: "music-of-latin-america", Literal: "/m/0g293"},
	enum.Choice[Topic]{Value: TopicPopMusic, Name: "pop-music", Literal: "/m/064t9"},
	enum.Choice[Topic]{Value: TopicReggae, Name: "reggae", Literal: "/m/06cqb"},
	enum.Choice[Topic]{Value: TopicRhythmAndBlues, Name: "rhythm-and-blues", Literal: "/m/06j6l"},
	enum.Choice[Topic]{Value: TopicRockMusic, Name: "rock-music", Literal: "/m/06by7"},
	enum.Choice[Topic]{Value: TopicSoulMusic, Name: "soul-music", Literal: "/m/0gywn"},
	enum.Choice[Topic]{Value: TopicGaming, Name: "gaming", Literal: "/m/0bzvm2"},
	enum.Choice[Topic]{Value: TopicActionGame, Name: "action-game", Literal: "/m/025zzc"},
	enum.Choice[Topic]{Value: TopicActionAdventureGame, Name: "action-adventure-game", Literal: "/m/02ntfj"},
	enum.Choice[Topic]{Value: TopicCasualGame, Name: "casual-game", Literal: "/m/0b1vjn"},
	enum.Choice[Topic]{Value: TopicMusicVideoGame, Name: "music-video-game", Literal: "/m/02hygl"},
	enum.Choice[Topic]{Value: TopicPuzzleVideoGame, Name: "puzzle-video-game", Literal: "/m/04q1x3q"},
	enum.Choice[Topic]{Value: TopicRacingVideoGame, Name: "racing-video-game", Literal: "/m/01sjng"},
	enum.Choice[Topic]{Value: TopicRolePlayingVideoGame, Name: "role-playing-video-game", Literal: "/m/0403l3g"},
	enum.Choice[Topic]{Value: TopicSimulationVideoGame, Name: "simulation-video-game", Literal: "/m/021bp2"},
	enum.Choice[Topic]{Value: TopicSportsVideoGame, Name: "sports-video-game", Literal: "/m/022dc6"},
	enum.Choice[Topic]{Value: TopicStrategyVideoGame, Name: "strategy-video-game", Literal: "/m/03hf_rm"},
	enum.Choice[Topic]{Value: TopicSports, Name: "sports", Literal: "/m/06ntj"},
	enum.Choice[Topic]{Value: TopicAmericanFootball, Name: "american-football", Literal: "/m/0jm_"},
	enum.Choice[Topic]{Value: TopicBaseball, Name: "baseball", Literal: "/m/018jz"},
	enum.Choice[Topic]{Value: TopicBasketball, Name: "basketball", Literal: "/m/018w8"},
	enum.Choice[Topic]{Value: TopicBoxing, Name: "boxing", Literal: "/m/01cgz"},
	enum.Choice[Topic]{Value: TopicCricket, Name: "cricket", Literal: "/m/09xp_"},
	enum.Choice[Topic]{Value: TopicFootball, Name: "football", Literal: "/m/02vx4"},
	enum.Choice[Topic]{Value: TopicGolf, Name: "golf", Literal: "/m/037hz"},
	enum.Choice[Topic]{Value: TopicIceHockey, Name: "ice-hockey", Literal: "/m/03tmr"},
	enum.Choice[Topic]{Value: TopicMixedMartialArts, Name: "mixed-martial-arts", Literal: "/m/01h7lh"},
	enum.Choice[Topic]{Value: TopicMotorsport, Name: "motorsport", Literal: "/m/0410tth"},
	enum.Choice[Topic]{Value: TopicTennis, Name: "tennis", Literal: "/m/07bs0"},
	enum.Choice[Topic]{Value: TopicVolleyball, Name: "volleyball", Literal: "/m/07_53"},
	enum.Choice[Topic]{Value: TopicEntertainment, Name: "entertainment", Literal: "/m/02jjt"},
	enum.Choice[Topic]{Value: TopicHumor, Name: "humor", Literal: "/m/09kqc"},
	enum.Choice[Topic]{Value: TopicMovies, Name: "movies", Literal: "/m/02vxn"},
	enum.Choice[Topic]{Value: TopicPerformingArts, Name: "performing-arts", Literal: "/m/05qjc"},
	enum.Choice[Topic]{Value: TopicProfessionalWrestling, Name: "professional-wrestling", Literal: "/m/066wd"},
	enum.Choice[Topic]{Value: TopicTVShows, Name: "tv-shows", Literal: "/m/0f2f9"},
	enum.Choice[Topic]{Value: TopicLifestyle, Name: "lifestyle", Literal: "/m/019_rr"},
	enum.Choice[Topic]{Value: TopicFashion, Name: "fashion", Literal: "/m/032tl"},
	enum.Choice[Topic]{Value: TopicFitness, Name: "fitness", Literal: "/m/027x7n"},
	enum.Choice[Topic]{Value: TopicFood, Name: "food", Literal: "/m/02wbm"},
	enum.Choice[Topic]{Value: TopicHobby, Name: "hobby", Literal: "/m/03glg"},
	enum.Choice[Topic]{Value: TopicPets, Name: "pets", Literal: "/m/068hy"},
	enum.Choice[Topic]{Value: TopicPhysicalAttractiveness, Name: "physical-attractiveness", Literal: "/m/041xxh"},
	enum.Choice[Topic]{Value: TopicTechnology, Name: "technology", Literal: "/m/07c1v"},
	enum.Choice[Topic]{Value: TopicTourism, Name: "tourism", Literal: "/m/07bxq"},
	enum.Choice[Topic]{Value: TopicVehicles, Name: "vehicles", Literal: "/m/07yv9"},
	enum.Choice[Topic]{Value: TopicSociety, Name: "society", Literal: "/m/098wr"},
	enum.Choice[Topic]{Value: TopicBusiness, Name: "business", Literal: "/m/09s1f"},
	enum.Choice[Topic]{Value: TopicHealth, Name: "health", Literal: "/m/0kt51"},
	enum.Choice[Topic]{Value: TopicMilitary, Name: "military", Literal: "/m/01h6rj"},
	enum.Choice[Topic]{Value: TopicPolitics, Name: "politics", Literal: "/m/05qt0"},
	enum.Choice[Topic]{Value: TopicReligion, Name: "religion", Literal: "/m/06bvp"},
	enum.Choice[Topic]{Value: TopicKnowledge, Name: "knowledge", Literal: "/m/01k8wb"},
)

func (v Topic) String() string { return Topics.Literal(v) }
