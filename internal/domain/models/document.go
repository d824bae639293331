package models

import "sort"

// Architecture is the strategic triple that anchors the whole plan.
type Architecture struct {
	Feeling   string `json:"feeling"`
	Pain      string `json:"pain"`
	Authority string `json:"authority"`
}

// CarouselSlide is a single card of a carousel post. SlideNumber is 1-based
// and defines display order.
type CarouselSlide struct {
	SlideNumber       int    `json:"slideNumber"`
	VisualDescription string `json:"visualDescription"`
	ImageSuggestion   string `json:"imageSuggestion"`
	TextOnCard        string `json:"textOnCard"`
}

// ReelsScene is one scene of a video script.
type ReelsScene struct {
	SceneNumber     int    `json:"sceneNumber"`
	VisualAction    string `json:"visualAction"`
	AudioSpeech     string `json:"audioSpeech"`
	Transition      string `json:"transition,omitempty"`
	AudioSuggestion string `json:"audioSuggestion,omitempty"`
}

// ReelsScript is the full technical script for a video day: hook, ordered
// scenes, closing call to action.
type ReelsScript struct {
	Hook   string       `json:"hook"`
	Scenes []ReelsScene `json:"scenes"`
	CTA    string       `json:"cta"`
}

// StaticPostInfo describes a single static image post.
type StaticPostInfo struct {
	VisualComposition string `json:"visualComposition"`
	ImageSuggestion   string `json:"imageSuggestion"`
	HeadlineOnCard    string `json:"headlineOnCard"`
}

// VisualElements carries free-text art direction per surface.
type VisualElements struct {
	Cards   string `json:"cards,omitempty"`
	Reels   string `json:"reels,omitempty"`
	Stories string `json:"stories,omitempty"`
}

// ContentKind identifies which format payload a day carries.
type ContentKind string

const (
	ContentVideo    ContentKind = "video"
	ContentCarousel ContentKind = "carousel"
	ContentStatic   ContentKind = "static"
	ContentNone     ContentKind = "none"
)

// DayContent is the resolved format payload of a day. The wire format keeps
// three optional fields (the model is schema-constrained, not type-constrained),
// so resolution happens once, at acceptance time, and the rest of the system
// only ever sees exactly one populated branch.
type DayContent struct {
	Kind     ContentKind
	Video    *ReelsScript
	Carousel []CarouselSlide
	Static   *StaticPostInfo
}

// DayPlan is one content day of the calendar.
type DayPlan struct {
	Day               string          `json:"day"`
	Format            string          `json:"format"`
	Theme             string          `json:"theme"`
	StrategicIntent   string          `json:"strategicIntent"`
	CreativeDirection string          `json:"creativeDirection"`
	CarouselSlides    []CarouselSlide `json:"carouselSlides,omitempty"`
	ReelsScript       *ReelsScript    `json:"reelsScript,omitempty"`
	StaticPostInfo    *StaticPostInfo `json:"staticPostInfo,omitempty"`
	VisualElements    VisualElements  `json:"visualElements"`
	Caption           string          `json:"caption"`
	ViewerPsychology  string          `json:"viewerPsychology"`
	ApproachStrategy  string          `json:"approachStrategy"`
	StorySuggestions  []string        `json:"storySuggestions"`
	ExecutionNotes    string          `json:"executionNotes,omitempty"`

	// Content is populated by ResolveContent and never serialized.
	Content DayContent `json:"-"`
}

// ResolveContent collapses the three optional format fields into a single
// tagged payload. Precedence when more than one is (incorrectly) populated:
// video script, then carousel, then static post. Scene and slide order is
// normalized to ascending number here so downstream code never sorts.
func (d *DayPlan) ResolveContent() {
	switch {
	case d.ReelsScript != nil:
		script := *d.ReelsScript
		script.Scenes = append([]ReelsScene(nil), script.Scenes...)
		sort.SliceStable(script.Scenes, func(i, j int) bool {
			return script.Scenes[i].SceneNumber < script.Scenes[j].SceneNumber
		})
		d.Content = DayContent{Kind: ContentVideo, Video: &script}
	case len(d.CarouselSlides) > 0:
		slides := append([]CarouselSlide(nil), d.CarouselSlides...)
		sort.SliceStable(slides, func(i, j int) bool {
			return slides[i].SlideNumber < slides[j].SlideNumber
		})
		d.Content = DayContent{Kind: ContentCarousel, Carousel: slides}
	case d.StaticPostInfo != nil:
		info := *d.StaticPostInfo
		d.Content = DayContent{Kind: ContentStatic, Static: &info}
	default:
		d.Content = DayContent{Kind: ContentNone}
	}
}

// ImmersionStep is one step of the bonus immersion asset.
type ImmersionStep struct {
	VisualStep     string `json:"visualStep"`
	ImageRef       string `json:"imageRef"`
	CardText       string `json:"cardText"`
	Objective      string `json:"objective"`
	ExpectedResult string `json:"expectedResult"`
}

// ImmersionBlock is supplementary rich material. It is never one of the seven
// calendar days.
type ImmersionBlock struct {
	Title            string          `json:"title"`
	Concept          string          `json:"concept"`
	Steps            []ImmersionStep `json:"steps"`
	Caption          string          `json:"caption"`
	ReelsCover       string          `json:"reelsCover"`
	ApproachStrategy string          `json:"approachStrategy"`
}

// EditorialDocument is the root artifact produced by generation and consumed
// by the renderer.
type EditorialDocument struct {
	Title          string          `json:"title"`
	Subtitle       string          `json:"subtitle"`
	PositionPhrase string          `json:"positionPhrase"`
	Architecture   Architecture    `json:"architecture"`
	Days           []DayPlan       `json:"days"`
	Immersion      *ImmersionBlock `json:"immersion,omitempty"`
	Observation    string          `json:"observation"`
}

// Normalize resolves every day's tagged content payload in place.
func (doc *EditorialDocument) Normalize() {
	for i := range doc.Days {
		doc.Days[i].ResolveContent()
	}
}
