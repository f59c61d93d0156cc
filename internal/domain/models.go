package domain

// Participant описывает участника жеребьёвки.
type Participant struct {
	ID    string `yaml:"id" validate:"required,max=100"`
	Name  string `yaml:"name" validate:"required,max=200"`
	Email string `yaml:"email" validate:"required,email"`
	Group string `yaml:"group,omitempty" validate:"max=100"`
}

// SameGroup сообщает, состоят ли оба участника в одной и той же непустой группе.
func (p Participant) SameGroup(other Participant) bool {
	return p.Group != "" && p.Group == other.Group
}

// Assignment связывает дарителя с получателем подарка.
type Assignment struct {
	Giver    Participant
	Receiver Participant
}

// Message содержит готовое к отправке письмо.
type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

// DeliveryStatus отражает результат уведомления одного дарителя.
type DeliveryStatus string

const (
	DeliveryStatusSent      DeliveryStatus = "SENT"
	DeliveryStatusFailed    DeliveryStatus = "FAILED"
	DeliveryStatusPreviewed DeliveryStatus = "PREVIEWED"
)

// Delivery хранит исход уведомления конкретного дарителя.
type Delivery struct {
	Giver  Participant
	Status DeliveryStatus
	Err    error
}
