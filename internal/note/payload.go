package note

// Payload is the typed body of a specialized note. There is one concrete
// implementation per NoteType other than Standard, so consumers dispatch
// with an exhaustive type switch instead of a string lookup.
type Payload interface {
	NoteType() NoteType
}

type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority,omitempty"` // "low", "medium", "high"
	DueDate   string `json:"dueDate,omitempty"`
	Subtasks  []Task `json:"subtasks,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type TodoData struct {
	Tasks  []Task `json:"tasks"`
	Filter string `json:"filter,omitempty"`
	SortBy string `json:"sortBy,omitempty"`
}

func (TodoData) NoteType() NoteType { return Todo }

type ShoppingItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Price    float64 `json:"price,omitempty"`
	Checked  bool    `json:"checked"`
}

type ShoppingData struct {
	Items      []ShoppingItem `json:"items"`
	Categories []string       `json:"categories,omitempty"`
	Budget     float64        `json:"budget,omitempty"`
	Currency   string         `json:"currency,omitempty"`
}

func (ShoppingData) NoteType() NoteType { return Shopping }

type ProjectColumn struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

type Milestone struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	DueDate string `json:"dueDate,omitempty"`
	Done    bool   `json:"done"`
}

type ProjectData struct {
	Columns    []ProjectColumn `json:"columns"`
	Milestones []Milestone     `json:"milestones,omitempty"`
	Team       []string        `json:"team,omitempty"`
}

func (ProjectData) NoteType() NoteType { return Project }

type ActionItem struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Owner string `json:"owner,omitempty"`
	Done  bool   `json:"done"`
}

type MeetingData struct {
	Title       string       `json:"title,omitempty"`
	Date        string       `json:"date,omitempty"`
	StartTime   string       `json:"startTime,omitempty"`
	Attendees   []string     `json:"attendees,omitempty"`
	Agenda      []string     `json:"agenda,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	ActionItems []ActionItem `json:"actionItems,omitempty"`
	Decisions   []string     `json:"decisions,omitempty"`
}

func (MeetingData) NoteType() NoteType { return Meeting }

type JournalData struct {
	Date       string   `json:"date,omitempty"`
	Mood       int      `json:"mood,omitempty"`   // 1..5
	Energy     int      `json:"energy,omitempty"` // 1..5
	Gratitude  []string `json:"gratitude,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
	Challenges string   `json:"challenges,omitempty"`
	Lessons    string   `json:"lessons,omitempty"`
	FreeWrite  string   `json:"freeWrite,omitempty"`
}

func (JournalData) NoteType() NoteType { return Journal }

type Idea struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
	Votes    int    `json:"votes,omitempty"`
	Starred  bool   `json:"starred"`
}

type BrainstormData struct {
	Topic      string   `json:"topic,omitempty"`
	Ideas      []Idea   `json:"ideas"`
	Categories []string `json:"categories,omitempty"`
}

func (BrainstormData) NoteType() NoteType { return Brainstorm }

type WeeklyDay struct {
	Tasks  []Task   `json:"tasks,omitempty"`
	Events []string `json:"events,omitempty"`
	Note   string   `json:"note,omitempty"`
	Rating int      `json:"rating,omitempty"`
}

type WeeklyData struct {
	WeekStart   string    `json:"weekStart,omitempty"`
	WeeklyGoals []string  `json:"weeklyGoals,omitempty"`
	Monday      WeeklyDay `json:"monday"`
	Tuesday     WeeklyDay `json:"tuesday"`
	Wednesday   WeeklyDay `json:"wednesday"`
	Thursday    WeeklyDay `json:"thursday"`
	Friday      WeeklyDay `json:"friday"`
	Saturday    WeeklyDay `json:"saturday"`
	Sunday      WeeklyDay `json:"sunday"`
	Review      string    `json:"review,omitempty"`
}

func (WeeklyData) NoteType() NoteType { return Weekly }

// Days returns the seven days in week order, for aggregation.
func (w WeeklyData) Days() []WeeklyDay {
	return []WeeklyDay{w.Monday, w.Tuesday, w.Wednesday, w.Thursday, w.Friday, w.Saturday, w.Sunday}
}

// DayNames matches the order of WeeklyData.Days.
var DayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
