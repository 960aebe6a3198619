// Package seed holds the mock data every view starts from. Each call returns
// fresh values, so callers may mutate what they get.
package seed

import (
	"fmt"

	"github.com/frahmantamala/manager-dashboard/internal/activity"
	"github.com/frahmantamala/manager-dashboard/internal/dashboard"
	"github.com/frahmantamala/manager-dashboard/internal/report"
	"github.com/frahmantamala/manager-dashboard/internal/worker"
)

// Workers is the initial worker list in display order.
func Workers() []*worker.Worker {
	return []*worker.Worker{
		{
			ID: 4, Name: "Sarah Connor", Role: "Apprentice",
			Email: "sarah.connor@example.com", Phone: "+1 (555) 010-9988", Address: "Los Angeles, CA",
			Status: worker.StatusPending, Events: []worker.Event{},
		},
		{
			ID: 5, Name: "James Cameron", Role: "Site Manager",
			Email: "james.c@example.com", Phone: "+1 (555) 012-3456", Address: "Malibu, CA",
			Status: worker.StatusPending, Events: []worker.Event{},
		},
		{
			ID: 1, Name: "John Doe", Role: "Field Technician",
			Email: "john.doe@example.com", Phone: "+1 (555) 123-4567", Address: "123 Main St, Springfield",
			Spent: 450, Status: worker.StatusActive, BillsUploaded: 3,
			Events: []worker.Event{
				{ID: 101, Name: "Site Visit: Downtown", Date: "Feb 10", Cost: 120},
				{ID: 102, Name: "Fuel Refill", Date: "Feb 12", Cost: 55},
				{ID: 103, Name: "Tools Maintenance", Date: "Feb 15", Cost: 275},
			},
		},
		{
			ID: 2, Name: "Alice Smith", Role: "Logistics",
			Email: "alice.smith@example.com", Phone: "+1 (555) 987-6543", Address: "456 Oak Ave, Metropolis",
			Spent: 1200, Status: worker.StatusActive, BillsUploaded: 5,
			Events: []worker.Event{
				{ID: 201, Name: "Delivery Run #1", Date: "Feb 05", Cost: 300},
				{ID: 202, Name: "Warehouse Supplies", Date: "Feb 08", Cost: 500},
				{ID: 203, Name: "Vehicle Service", Date: "Feb 20", Cost: 400},
			},
		},
		{
			ID: 3, Name: "Mike Johnson", Role: "Driver",
			Email: "mike.j@example.com", Phone: "+1 (555) 456-7890", Address: "789 Pine Ln, Smallville",
			Spent: 200, Status: worker.StatusOnLeave, BillsUploaded: 2,
			Events: []worker.Event{
				{ID: 301, Name: "Fuel", Date: "Jan 28", Cost: 80},
				{ID: 302, Name: "Parking Fees", Date: "Jan 29", Cost: 120},
			},
		},
	}
}

func Activities() []activity.Activity {
	rows := []struct {
		name   string
		time   string
		amount float64
		status string
	}{
		{"John Doe", "2 hours ago", 1210.00, "Pending"},
		{"Alice Smith", "5 hours ago", 550.00, "Approved"},
		{"Mike Johnson", "1 day ago", 125.50, "Approved"},
		{"Sarah Connor", "2 days ago", 890.00, "Approved"},
		{"David Wilson", "3 days ago", 230.00, "Pending"},
		{"Emily Davis", "3 days ago", 1200.00, "Rejected"},
		{"Robert Fox", "4 days ago", 450.50, "Approved"},
		{"James Cameron", "5 days ago", 3200.00, "Pending"},
		{"Lisa Wong", "1 week ago", 65.00, "Approved"},
		{"Michael Brown", "1 week ago", 150.00, "Approved"},
	}

	out := make([]activity.Activity, len(rows))
	for i, r := range rows {
		id := int64(i + 1)
		out[i] = activity.Activity{
			ID:         id,
			Name:       r.name,
			Initials:   activity.Initials(r.name),
			ReportID:   1000 + id,
			Time:       r.time,
			Amount:     r.amount,
			Status:     r.status,
			StatusType: activity.StatusTypeOf(r.status),
		}
	}
	return out
}

const billImage = "https://images.unsplash.com/photo-%s?auto=format&fit=crop&q=80&w=400"

func Dashboard() dashboard.Fixtures {
	return dashboard.Fixtures{
		Cards: []dashboard.Card{
			{Key: "total_spend", Title: "Total Money Spend", Value: "$48,250.00", Caption: "Total approved expenses"},
			{Key: "bills_received", Title: "No. of bills received", Value: "142", Caption: "Pending review this week"},
			{Key: "active_workers", Title: "No. of working active", Value: "18", Caption: "Currently active on sites"},
		},
		Bills: []dashboard.Bill{
			{ID: 1024, Vendor: "Home Depot", Category: "Materials", Amount: 450.25, Date: "Feb 15, 2025", Image: image("1554224155-8d04cb21cd6c")},
			{ID: 1025, Vendor: "Shell Station", Category: "Fuel", Amount: 85.00, Date: "Feb 16, 2025", Image: image("1554224154-260327c0d11e")},
			{ID: 1026, Vendor: "Staples", Category: "Office", Amount: 120.50, Date: "Feb 17, 2025", Image: image("1518186285589-2f7649de83e0")},
			{ID: 1027, Vendor: "Amazon", Category: "Equipment", Amount: 899.99, Date: "Feb 17, 2025", Image: image("1580048914979-3c7817430560")},
			{ID: 1028, Vendor: "Uber Trip", Category: "Travel", Amount: 45.20, Date: "Feb 18, 2025", Image: image("1450101499163-c8848c66ca85")},
			{ID: 1029, Vendor: "Local Deli", Category: "Meals", Amount: 32.15, Date: "Feb 18, 2025", Image: image("1529338296736-47b068da87eb")},
		},
		Transactions: []dashboard.Transaction{
			{ID: "TXN-1001", Vendor: "Heavy Machinery Co.", Category: "Equipment", Date: "Feb 20, 2025", Amount: 12500.00, Status: "Completed", Type: dashboard.TransactionDebit},
			{ID: "TXN-1002", Vendor: "Metro Electric Utilities", Category: "Utilities", Date: "Feb 18, 2025", Amount: 3450.25, Status: "Completed", Type: dashboard.TransactionDebit},
			{ID: "TXN-1003", Vendor: "Shell Fleet Services", Category: "Fuel", Date: "Feb 15, 2025", Amount: 850.00, Status: "Completed", Type: dashboard.TransactionDebit},
			{ID: "TXN-1004", Vendor: "Office Supplies Inc.", Category: "Office", Date: "Feb 12, 2025", Amount: 245.50, Status: "Completed", Type: dashboard.TransactionDebit},
			{ID: "TXN-1005", Vendor: "Tech Solutions Ltd", Category: "Software", Date: "Feb 01, 2025", Amount: 1200.00, Status: "Recurring", Type: dashboard.TransactionDebit},
			{ID: "TXN-1006", Vendor: "Client Refund - #9022", Category: "Refund", Date: "Jan 28, 2025", Amount: 350.00, Status: "Completed", Type: dashboard.TransactionCredit},
			{ID: "TXN-1007", Vendor: "Global Logistics", Category: "Travel", Date: "Jan 25, 2025", Amount: 2100.00, Status: "Completed", Type: dashboard.TransactionDebit},
			{ID: "TXN-1008", Vendor: "Local Catering", Category: "Meals", Date: "Jan 22, 2025", Amount: 450.75, Status: "Completed", Type: dashboard.TransactionDebit},
			{ID: "TXN-1009", Vendor: "BuildRight Contractors", Category: "Labor", Date: "Jan 20, 2025", Amount: 8500.00, Status: "Completed", Type: dashboard.TransactionDebit},
		},
		ActiveWorkers: []dashboard.ActiveWorker{
			{ID: 1, Name: "John Doe", Role: "Field Technician", CheckIn: "07:55 AM", Location: "Site A - Downtown", Status: "Online"},
			{ID: 2, Name: "Alice Smith", Role: "Logistics Manager", CheckIn: "08:10 AM", Location: "Warehouse", Status: "Online"},
			{ID: 3, Name: "Robert Fox", Role: "Electrician", CheckIn: "08:00 AM", Location: "Site B - Uptown", Status: "Online"},
			{ID: 4, Name: "Emily Davis", Role: "Safety Inspector", CheckIn: "08:30 AM", Location: "Site A - Downtown", Status: "Online"},
			{ID: 5, Name: "Michael Brown", Role: "Equipment Operator", CheckIn: "07:45 AM", Location: "Site C - Industrial Park", Status: "Online"},
			{ID: 6, Name: "David Wilson", Role: "Site Supervisor", CheckIn: "07:30 AM", Location: "Site B - Uptown", Status: "Online"},
			{ID: 7, Name: "Sarah Connor", Role: "Apprentice", CheckIn: "08:05 AM", Location: "Site A - Downtown", Status: "Online"},
		},
	}
}

func image(photo string) string {
	return fmt.Sprintf(billImage, photo)
}

func shares(fuel, food, travel, office float64) []report.CategoryShare {
	return []report.CategoryShare{
		{Label: "Fuel", Percent: fuel},
		{Label: "Food", Percent: food},
		{Label: "Travel", Percent: travel},
		{Label: "Office", Percent: office},
	}
}

// Reports lists spenders unsorted; report.NewService ranks them.
func Reports() report.Fixtures {
	spenders := []report.Spender{
		{ID: 1, Name: "Alice Smith", Amount: 1200},
		{ID: 2, Name: "John Doe", Amount: 950},
		{ID: 3, Name: "Mike Johnson", Amount: 550},
		{ID: 4, Name: "Sarah Connor", Amount: 450},
		{ID: 5, Name: "Robert Fox", Amount: 320},
		{ID: 6, Name: "Emily Davis", Amount: 210},
		{ID: 7, Name: "James Cameron", Amount: 150},
	}
	for i := range spenders {
		spenders[i].Initials = activity.Initials(spenders[i].Name)
	}

	return report.Fixtures{
		Spenders: spenders,
		Breakdowns: map[string]report.Breakdown{
			report.Overall: {Weekly: []float64{35, 55, 40, 70, 60, 85, 75}, Categories: shares(45, 30, 15, 10)},
			"1":            {Weekly: []float64{20, 30, 25, 40, 35, 50, 45}, Categories: shares(20, 10, 60, 10)},
			"2":            {Weekly: []float64{25, 15, 35, 20, 45, 15, 40}, Categories: shares(60, 20, 5, 15)},
			"3":            {Weekly: []float64{5, 10, 8, 15, 12, 20, 18}, Categories: shares(10, 70, 10, 10)},
		},
	}
}
