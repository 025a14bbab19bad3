package core

// SeedTransactions returns the sample ledger used when nothing usable is
// persisted yet. Each call returns a fresh slice.
func SeedTransactions() []Transaction {
	return []Transaction{
		{ID: "1", Description: "Salário Mensal", Amount: Money{Cents: 500000}, Date: NewDate(2023, 10, 1), Type: Income, Category: Salary},
		{ID: "2", Description: "Aluguel", Amount: Money{Cents: 150000}, Date: NewDate(2023, 10, 5), Type: Expense, Category: Housing},
		{ID: "3", Description: "Supermercado", Amount: Money{Cents: 80000}, Date: NewDate(2023, 10, 10), Type: Expense, Category: Food},
		{ID: "4", Description: "Internet", Amount: Money{Cents: 10000}, Date: NewDate(2023, 10, 12), Type: Expense, Category: Other},
		{ID: "5", Description: "Dividendos", Amount: Money{Cents: 25000}, Date: NewDate(2023, 10, 15), Type: Income, Category: Investments},
		{ID: "6", Description: "Cinema", Amount: Money{Cents: 6000}, Date: NewDate(2023, 10, 20), Type: Expense, Category: Leisure},
	}
}
