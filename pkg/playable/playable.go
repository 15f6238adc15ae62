package playable

import (
	"fmt"
	"time"

	"deepsheep/pkg/deck"

	"github.com/google/uuid"
)

// NoSeat is used for log messages that are not about a specific seat
const NoSeat = -1

// LogMessage is the format a hand records its events in
// If Seats is empty, assume it's a general statement, otherwise the message reads like "{seat} did X, Y, Z"
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Seats   []int        `json:"seats"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

func (l *LogMessage) String() string {
	msg := l.Message
	if len(l.Seats) > 0 {
		msg = fmt.Sprintf("seat %v: %s", l.Seats, msg)
	}

	if len(l.Cards) > 0 {
		msg = fmt.Sprintf("%s [%s]", msg, deck.CardsToString(l.Cards))
	}

	return msg
}

// CardLogMessage returns a new LogMessage that shows cards
func CardLogMessage(seat int, cards []*deck.Card, format string, a ...interface{}) *LogMessage {
	var seats []int
	if seat != NoSeat {
		seats = []int{seat}
	}

	var logCards []*deck.Card
	if len(cards) > 0 {
		logCards = deck.Hand(cards).DeepClone()
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Seats:   seats,
		Cards:   logCards,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// Log is an append-only list of log messages
type Log []*LogMessage

// Append adds messages to the log
func (l *Log) Append(messages ...*LogMessage) {
	*l = append(*l, messages...)
}

// Since returns the messages after the first n
func (l Log) Since(n int) []*LogMessage {
	if n >= len(l) {
		return nil
	}

	return l[n:]
}
