package domain

// GameLog - ограниченный журнал внутриигровых сообщений.
// Переживает смену зоны вместе с игроком.
type GameLog struct {
	Entries []string `json:"entries"`
	Cap     int      `json:"-"`
}

func NewGameLog() *GameLog {
	return &GameLog{
		Entries: make([]string, 0, MaxMessagesInLog),
		Cap:     MaxMessagesInLog,
	}
}

// Append добавляет сообщение, вытесняя самое старое при переполнении.
func (g *GameLog) Append(msg string) {
	if msg == "" {
		return
	}
	g.Entries = append(g.Entries, msg)
	if len(g.Entries) > g.Cap {
		g.Entries = g.Entries[len(g.Entries)-g.Cap:]
	}
}

// Last возвращает последнее сообщение (пустую строку, если лог пуст).
func (g *GameLog) Last() string {
	if len(g.Entries) == 0 {
		return ""
	}
	return g.Entries[len(g.Entries)-1]
}
