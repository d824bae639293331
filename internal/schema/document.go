// Package schema declares the structural contract the model's reply must
// satisfy. The same shape constrains generation (as a response schema on the
// model call) and feeds the renderer (via the decoded document types).
package schema

import "google.golang.org/genai"

// Document returns the response schema for a full editorial document.
// Required lists mirror the document invariants: the cover triple, the
// architecture block, the day list, and the closing observation are
// mandatory; immersion and the per-day format payloads are optional.
func Document() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":          {Type: genai.TypeString},
			"subtitle":       {Type: genai.TypeString},
			"positionPhrase": {Type: genai.TypeString},
			"architecture": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"feeling":   {Type: genai.TypeString},
					"pain":      {Type: genai.TypeString},
					"authority": {Type: genai.TypeString},
				},
				Required: []string{"feeling", "pain", "authority"},
			},
			"days": {
				Type:  genai.TypeArray,
				Items: dayPlan(),
			},
			"immersion":   immersion(),
			"observation": {Type: genai.TypeString},
		},
		Required: []string{"title", "subtitle", "positionPhrase", "architecture", "days", "observation"},
	}
}

func dayPlan() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"day":               {Type: genai.TypeString},
			"format":            {Type: genai.TypeString},
			"theme":             {Type: genai.TypeString},
			"strategicIntent":   {Type: genai.TypeString},
			"creativeDirection": {Type: genai.TypeString},
			"carouselSlides": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"slideNumber":       {Type: genai.TypeInteger},
						"visualDescription": {Type: genai.TypeString},
						"imageSuggestion":   {Type: genai.TypeString},
						"textOnCard":        {Type: genai.TypeString},
					},
					Required: []string{"slideNumber", "visualDescription", "imageSuggestion", "textOnCard"},
				},
			},
			"reelsScript": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"hook": {Type: genai.TypeString},
					"scenes": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"sceneNumber":     {Type: genai.TypeInteger},
								"visualAction":    {Type: genai.TypeString},
								"audioSpeech":     {Type: genai.TypeString},
								"transition":      {Type: genai.TypeString},
								"audioSuggestion": {Type: genai.TypeString},
							},
							Required: []string{"sceneNumber", "visualAction", "audioSpeech"},
						},
					},
					"cta": {Type: genai.TypeString},
				},
			},
			"staticPostInfo": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"visualComposition": {Type: genai.TypeString},
					"imageSuggestion":   {Type: genai.TypeString},
					"headlineOnCard":    {Type: genai.TypeString},
				},
			},
			"visualElements": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"cards":   {Type: genai.TypeString},
					"reels":   {Type: genai.TypeString},
					"stories": {Type: genai.TypeString},
				},
			},
			"caption":          {Type: genai.TypeString},
			"viewerPsychology": {Type: genai.TypeString},
			"approachStrategy": {Type: genai.TypeString},
			"storySuggestions": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"executionNotes": {Type: genai.TypeString},
		},
		Required: []string{
			"day", "format", "theme", "strategicIntent", "creativeDirection",
			"caption", "viewerPsychology", "approachStrategy", "storySuggestions",
		},
	}
}

func immersion() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":   {Type: genai.TypeString},
			"concept": {Type: genai.TypeString},
			"steps": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"visualStep":     {Type: genai.TypeString},
						"imageRef":       {Type: genai.TypeString},
						"cardText":       {Type: genai.TypeString},
						"objective":      {Type: genai.TypeString},
						"expectedResult": {Type: genai.TypeString},
					},
					Required: []string{"visualStep", "imageRef", "cardText", "objective", "expectedResult"},
				},
			},
			"caption":          {Type: genai.TypeString},
			"reelsCover":       {Type: genai.TypeString},
			"approachStrategy": {Type: genai.TypeString},
		},
		Required: []string{"title", "concept", "steps", "caption", "reelsCover", "approachStrategy"},
	}
}
