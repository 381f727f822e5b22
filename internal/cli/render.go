package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/stockai/stockai-go/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	upStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	downStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func printTitle(s string) {
	fmt.Println(titleStyle.Render(s))
}

func printSuccess(s string) {
	fmt.Println(successStyle.Render(s))
}

func printFailure(s string) {
	fmt.Println(failureStyle.Render(s))
}

func renderStockData(data *models.StockData) {
	printTitle(fmt.Sprintf("%s  %s", data.Symbol, data.Name))
	if data.Sector != "" {
		fmt.Println(mutedStyle.Render(data.Sector))
	}

	fmt.Printf("Price: %s\n", data.CurrentPrice.StringFixed(2))
	if !data.PreviousClose.IsZero() {
		change := data.CurrentPrice.Sub(data.PreviousClose)
		style := upStyle
		if change.IsNegative() {
			style = downStyle
		}
		fmt.Printf("Change: %s (prev close %s)\n",
			style.Render(change.StringFixed(2)), data.PreviousClose.StringFixed(2))
	}
	if data.MarketCap > 0 {
		fmt.Printf("Market cap: %d\n", data.MarketCap)
	}
	if data.PERatio > 0 {
		fmt.Printf("P/E: %.2f\n", data.PERatio)
	}

	if len(data.Data) > 0 {
		fmt.Println()
		fmt.Println(mutedStyle.Render("Recent bars:"))
		start := len(data.Data) - 5
		if start < 0 {
			start = 0
		}
		for _, bar := range data.Data[start:] {
			fmt.Printf("  %s  O %s  H %s  L %s  C %s  V %d\n",
				bar.Date, bar.Open.StringFixed(2), bar.High.StringFixed(2),
				bar.Low.StringFixed(2), bar.Close.StringFixed(2), bar.Volume)
		}
	}
}

func renderSearchResults(results []models.SearchResult) {
	if len(results) == 0 {
		fmt.Println("No matches")
		return
	}
	for _, r := range results {
		line := fmt.Sprintf("%-10s %s", r.Symbol, r.Name)
		if r.CurrentPrice != nil {
			line += fmt.Sprintf("  (%s)", r.CurrentPrice.StringFixed(2))
		}
		fmt.Println(line)
	}
}

func renderSymbols(symbols []models.SymbolInfo) {
	for _, s := range symbols {
		if s.Sector != "" {
			fmt.Printf("%-12s %-30s %s\n", s.Symbol, s.Name, mutedStyle.Render(s.Sector))
		} else {
			fmt.Printf("%-12s %s\n", s.Symbol, s.Name)
		}
	}
}

func renderSectors(sectors []models.SectorInfo) {
	for _, s := range sectors {
		fmt.Printf("%-15s %d symbols\n", s.Name, s.Count)
	}
}

func renderPrediction(pred *models.Prediction) {
	printTitle(fmt.Sprintf("%s prediction (%s)", pred.Symbol, pred.ModelType))
	fmt.Printf("Current price:   %s\n", pred.CurrentPrice.StringFixed(2))
	fmt.Printf("Predicted price: %s\n", pred.PredictedPrice.StringFixed(2))

	style := upStyle
	if pred.PriceChangePercent < 0 {
		style = downStyle
	}
	fmt.Printf("Expected change: %s\n", style.Render(fmt.Sprintf("%+.2f%%", pred.PriceChangePercent)))
	fmt.Printf("Confidence:      %.1f%%\n", pred.Confidence)
	fmt.Printf("Recommendation:  %s\n", pred.Recommendation)
	fmt.Println(mutedStyle.Render(pred.PredictionDate))
}

func renderPredictionHistory(records []models.PredictionRecord) {
	if len(records) == 0 {
		fmt.Println("No predictions yet")
		return
	}
	for _, r := range records {
		fmt.Printf("%-10s %-14s %s -> %s  (%.1f%%, %s)\n",
			r.Symbol, r.ModelType, r.CurrentPrice.StringFixed(2),
			r.PredictedPrice.StringFixed(2), r.Confidence, r.Recommendation)
	}
}

func renderWatchlist(items []models.WatchlistItem) {
	if len(items) == 0 {
		fmt.Println("Watchlist is empty")
		return
	}
	for _, item := range items {
		price := "-"
		if item.CurrentPrice != nil {
			price = item.CurrentPrice.StringFixed(2)
		}
		fmt.Printf("%-10s %-30s %8s  %s\n",
			item.Symbol, item.CompanyName, price, mutedStyle.Render(item.ID))
	}
}

func renderAssistantReply(reply string) {
	printTitle("Assistant")
	fmt.Println(reply)
}

func renderChatHistory(messages []models.ChatMessage) {
	if len(messages) == 0 {
		fmt.Println("No messages yet")
		return
	}
	for _, m := range messages {
		label := "you"
		if m.Role == models.RoleAssistant {
			label = "assistant"
		}
		fmt.Printf("%s %s\n", mutedStyle.Render("["+label+"]"), m.Content)
	}
}

func renderHealthReport(report *models.HealthReport) {
	if report.Status == "healthy" {
		printSuccess("Status: " + report.Status)
	} else {
		printFailure("Status: " + report.Status)
	}
	if report.Database != "" {
		fmt.Printf("Database: %s\n", report.Database)
	}
	fmt.Printf("OpenAI configured: %v\n", report.OpenAIConfigured)
	for name, count := range report.Collections {
		fmt.Printf("  %-20s %d documents\n", name, count)
	}
}

func renderDBInfo(info *models.DBInfo) {
	printTitle("Storage")
	for _, coll := range info.Collections {
		fmt.Printf("  %-20s %d documents, %d indexes\n",
			coll.Name, coll.DocumentCount, len(coll.Indexes))
	}
}
