package models

// RemoteEvaluation is the strict-JSON shape the model is asked to return
// for a one-shot script evaluation.

type RemoteToxicity struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

type RemoteSentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type RemoteCTA struct {
	Present bool     `json:"present"`
	Phrases []string `json:"phrases"`
}

type RemoteHook struct {
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

type RemoteReadability struct {
	Level string  `json:"level"`
	Score float64 `json:"score"`
}

type RemoteBrandSafety struct {
	Safe   bool     `json:"safe"`
	Issues []string `json:"issues"`
}

type RemoteTone struct {
	Label string `json:"label"`
}

type RemoteVirality struct {
	Score     int    `json:"score"`
	Rationale string `json:"rationale"`
}

type RemotePlatform struct {
	Compliant bool     `json:"compliant"`
	Issues    []string `json:"issues"`
}

type RemoteEvaluation struct {
	Toxicity           RemoteToxicity    `json:"toxicity"`
	Sentiment          RemoteSentiment   `json:"sentiment"`
	CTA                RemoteCTA         `json:"cta"`
	Hook               RemoteHook        `json:"hook"`
	Readability        RemoteReadability `json:"readability"`
	BrandSafety        RemoteBrandSafety `json:"brand_safety"`
	Tone               RemoteTone        `json:"tone"`
	Virality           RemoteVirality    `json:"virality"`
	PlatformGuidelines RemotePlatform    `json:"platform_guidelines"`
	Hashtags           []string          `json:"hashtags"`
}
