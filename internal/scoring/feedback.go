package scoring

type Tier string

const (
	TierLow       Tier = "baixa"
	TierMedium    Tier = "medio"
	TierExcellent Tier = "excelente"
)

const (
	ExcellentThreshold = 100
	MediumThreshold    = 60
)

type Feedback struct {
	Tier       Tier   `json:"tier"`
	Emoji      string `json:"emoji"`
	Label      string `json:"label"`
	Message    string `json:"message"`
	LabelKey   string `json:"-"`
	MessageKey string `json:"-"`
}

func Classify(total int) Feedback {
	switch {
	case total >= ExcellentThreshold:
		return Feedback{
			Tier:       TierExcellent,
			Emoji:      "🏆",
			Label:      "Excelente",
			Message:    "Excelente! Você está no topo da sua jornada!",
			LabelKey:   "feedback.excellent.label",
			MessageKey: "feedback.excellent.message",
		}
	case total >= MediumThreshold:
		return Feedback{
			Tier:       TierMedium,
			Emoji:      "👏",
			Label:      "Médio",
			Message:    "Muito bem! Continue assim!",
			LabelKey:   "feedback.medium.label",
			MessageKey: "feedback.medium.message",
		}
	default:
		return Feedback{
			Tier:       TierLow,
			Emoji:      "💪",
			Label:      "Baixa",
			Message:    "Vamos com tudo! Cada passo conta!",
			LabelKey:   "feedback.low.label",
			MessageKey: "feedback.low.message",
		}
	}
}
