package worker

// Worker is the row behind a worker record. Position orders the display
// list: the lowest position is shown first.
type Worker struct {
	ID            int64         `gorm:"primaryKey;autoIncrement:false"`
	Position      int64         `gorm:"column:position;not null;index"`
	Name          string        `gorm:"column:name;not null"`
	Role          string        `gorm:"column:role;not null"`
	Email         string        `gorm:"column:email"`
	Phone         string        `gorm:"column:phone"`
	Address       string        `gorm:"column:address"`
	Spent         float64       `gorm:"column:spent;not null;default:0"`
	Status        string        `gorm:"column:status;not null"`
	BillsUploaded int           `gorm:"column:bills_uploaded;not null;default:0"`
	Events        []WorkerEvent `gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

func (Worker) TableName() string {
	return "workers"
}

// WorkerEvent is one expense line item. Seq keeps insertion order.
type WorkerEvent struct {
	ID       int64   `gorm:"primaryKey;autoIncrement:false"`
	WorkerID int64   `gorm:"column:worker_id;not null;index"`
	Seq      int     `gorm:"column:seq;not null"`
	Name     string  `gorm:"column:name;not null"`
	Date     string  `gorm:"column:date;not null"`
	Cost     float64 `gorm:"column:cost;not null"`
}

func (WorkerEvent) TableName() string {
	return "worker_events"
}
