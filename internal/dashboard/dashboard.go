package dashboard

type Card struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Value   string `json:"value"`
	Caption string `json:"caption"`
}

type Bill struct {
	ID       int64   `json:"id"`
	Vendor   string  `json:"vendor"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Image    string  `json:"image"`
}

type TransactionType string

const (
	TransactionDebit  TransactionType = "debit"
	TransactionCredit TransactionType = "credit"
)

type Transaction struct {
	ID       string          `json:"id"`
	Vendor   string          `json:"vendor"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
	Amount   float64         `json:"amount"`
	Status   string          `json:"status"`
	Type     TransactionType `json:"type"`
}

// ActiveWorker is a worker currently checked in on a site.
type ActiveWorker struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	CheckIn  string `json:"check_in"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

type TransactionSummary struct {
	Count       int     `json:"count"`
	TotalDebit  float64 `json:"total_debit"`
	TotalCredit float64 `json:"total_credit"`
	Net         float64 `json:"net"`
}

// Summarize totals debits and credits separately. Net is credits minus debits.
func Summarize(txns []Transaction) TransactionSummary {
	s := TransactionSummary{Count: len(txns)}
	for _, t := range txns {
		switch t.Type {
		case TransactionCredit:
			s.TotalCredit += t.Amount
		default:
			s.TotalDebit += t.Amount
		}
	}
	s.Net = s.TotalCredit - s.TotalDebit
	return s
}

type Fixtures struct {
	Cards         []Card
	Bills         []Bill
	Transactions  []Transaction
	ActiveWorkers []ActiveWorker
}

// Board serves the static content behind the dashboard cards and modals.
type Board struct {
	fixtures Fixtures
}

func NewBoard(f Fixtures) *Board {
	return &Board{fixtures: f}
}

func (b *Board) Cards() []Card {
	return append([]Card(nil), b.fixtures.Cards...)
}

func (b *Board) Bills() []Bill {
	return append([]Bill(nil), b.fixtures.Bills...)
}

func (b *Board) Transactions() []Transaction {
	return append([]Transaction(nil), b.fixtures.Transactions...)
}

func (b *Board) TransactionSummary() TransactionSummary {
	return Summarize(b.fixtures.Transactions)
}

func (b *Board) ActiveWorkers() []ActiveWorker {
	return append([]ActiveWorker(nil), b.fixtures.ActiveWorkers...)
}
