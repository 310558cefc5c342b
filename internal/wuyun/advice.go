package wuyun

// Tone hints how guidance should be highlighted when displayed.
type Tone string

const (
	ToneError   Tone = "error"
	ToneInfo    Tone = "info"
	ToneWarning Tone = "warning"
	ToneNeutral Tone = "neutral"
)

// Advice is the health guidance attached to an annual movement element.
type Advice struct {
	Text string `json:"text"`
	Tone Tone   `json:"tone"`
}

const calmAdvice = "气机变化较为平缓，顺应四时养生即可。"

// adviceByElement is indexed by Element; every element has an entry.
var adviceByElement = [ElementCount]Advice{
	Earth: {Text: "注意脾胃运化，谨防湿邪困脾。", Tone: ToneWarning},
	Metal: {Text: calmAdvice, Tone: ToneNeutral},
	Water: {Text: "寒气偏重，宜温补肾阳，防寒湿。", Tone: ToneInfo},
	Wood:  {Text: calmAdvice, Tone: ToneNeutral},
	Fire:  {Text: "夏季注意心脑血管，预防热邪侵袭。", Tone: ToneError},
}

// AdviceFor returns the guidance for e, or the zero Advice for an invalid element.
func AdviceFor(e Element) Advice {
	if !e.Valid() {
		return Advice{}
	}
	return adviceByElement[e]
}
