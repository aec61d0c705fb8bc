package advisor

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	categorizeSystemPrompt  = "You are an expense categorization assistant. Categorize the following expense into one of these categories: Food, Rent, Travel, Shopping, Bills, Entertainment, Healthcare, Education, Others. Respond with only the category name."
	summarySystemPrompt     = "You are a financial advisor. Provide concise, insightful spending summaries."
	suggestionsSystemPrompt = "You are a personal finance expert. Provide practical money-saving advice."
	predictionSystemPrompt  = "You are a financial analyst. Predict future expenses based on historical data."

	categorizeMaxTokens  = 50
	summaryMaxTokens     = 150
	suggestionsMaxTokens = 200
	predictionMaxTokens  = 150
)

func summaryPrompt(totalCurrent, totalPrevious decimal.Decimal, totals CategoryTotals, change PercentChange) string {
	return fmt.Sprintf("Based on this expense data:\n"+
		"    Total spent this month: %s\n"+
		"    Previous month: %s\n"+
		"    Spending by category: %s\n"+
		"    Percentage change: %s%%\n"+
		"    \n"+
		"    Generate a natural language summary of the spending patterns in 2-3 sentences. Be concise and insightful.",
		totalCurrent.String(), totalPrevious.String(), totals.breakdown(), change.String())
}

func suggestionsPrompt(budget, totalSpent decimal.Decimal, utilization string, totals CategoryTotals) string {
	return fmt.Sprintf("Based on this spending data:\n"+
		"    Monthly budget: %s\n"+
		"    Total spent: %s\n"+
		"    Budget utilization: %s%%\n"+
		"    Spending by category: %s\n"+
		"    \n"+
		"    Provide 3-4 specific, actionable suggestions to reduce expenses. Be practical and realistic.",
		budget.String(), totalSpent.String(), utilization, totals.indentedJSON())
}

func predictionPrompt(means CategoryTotals) string {
	return fmt.Sprintf("Based on these average monthly expenses by category: %s\n"+
		"    Predict the next month's expenses and provide insights on potential trends. Keep it concise.",
		means.compactJSON())
}

func summaryTemplate(totalCurrent decimal.Decimal, change PercentChange, top CategoryAmount, hasTop bool) string {
	topCat := "various categories"
	if hasTop {
		topCat = fmt.Sprintf("%s (%s)", top.Category, top.Amount.String())
	}
	return fmt.Sprintf("You spent $%s this month, which %s compared to last month. Your highest spending category is %s.",
		totalCurrent.StringFixed(2), change.describe(), topCat)
}

func summaryFallback(totalCurrent decimal.Decimal, change PercentChange) string {
	return fmt.Sprintf("You spent $%s this month, which %s compared to last month.",
		totalCurrent.StringFixed(2), change.describe())
}

func suggestionsTemplate(utilization, topCategory string) string {
	return fmt.Sprintf("You've used %s%% of your budget. Your highest spending is in %s. Try setting a limit on this category and review unnecessary subscriptions to save money.",
		utilization, topCategory)
}

func suggestionsFallback(topCategory string) string {
	return fmt.Sprintf("Consider reducing spending in %s. Review your subscriptions and look for ways to cut unnecessary costs in high-spending categories.",
		topCategory)
}

func predictionFallback(totalMean decimal.Decimal) string {
	return fmt.Sprintf("Based on your spending trends, expect to spend approximately $%s next month. Maintain consistent budgeting to stay on track.",
		totalMean.StringFixed(2))
}
