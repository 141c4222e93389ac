package notifier

import (
	"fmt"
	"html"
	"strings"

	"FiveLine/internal/model"
	"FiveLine/internal/recorder"
)

// FormatSpectrumReport formats a zone signal into a Telegram message.
func FormatSpectrumReport(sig *model.ZoneSignal) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📈 <b>%s 樂活五線譜</b> | %s\n\n", html.EscapeString(sig.Symbol), sig.Date.Format("2006-01-02")))

	lines := []struct {
		name  string
		value float64
	}{
		{"樂觀線", sig.Optimistic},
		{"壓力線", sig.Resistance},
		{"趨勢線", sig.Trend},
		{"支撐線", sig.Support},
		{"悲觀線", sig.Pessimistic},
	}
	marked := false
	for _, l := range lines {
		if !marked && sig.Close >= l.value {
			b.WriteString(fmt.Sprintf("  ▶ 收盤價: <b>%.2f</b>\n", sig.Close))
			marked = true
		}
		b.WriteString(fmt.Sprintf("  %s: %.2f\n", l.name, l.value))
	}
	if !marked {
		b.WriteString(fmt.Sprintf("  ▶ 收盤價: <b>%.2f</b>\n", sig.Close))
	}

	b.WriteString(fmt.Sprintf("\n偏離趨勢: %+.2fσ\n", sig.Deviation))
	b.WriteString(fmt.Sprintf("位置: <b>%s</b>\n", sig.Tier.Label))
	b.WriteString(fmt.Sprintf("建議: %s\n", sig.Tier.Advice))
	return b.String()
}

// FormatRunHistory lists recent runs, newest first.
func FormatRunHistory(runs []recorder.RunEvent) string {
	if len(runs) == 0 {
		return "尚無計算紀錄"
	}
	var b strings.Builder
	b.WriteString("🗂 <b>最近計算紀錄</b>\n\n")
	for _, r := range runs {
		status := r.Zone
		if r.Status != recorder.StatusOK {
			status = "❌ " + r.Error
		}
		b.WriteString(fmt.Sprintf("%s %s [%s] %d/%d %s\n",
			r.Time.Format("01-02 15:04"), html.EscapeString(r.Symbol), r.Trigger, r.Defined, r.Samples, html.EscapeString(status)))
	}
	return b.String()
}

// FormatHelp lists the supported commands.
func FormatHelp() string {
	return "可用命令:\n• /spectrum [代碼] 查看五線譜位置\n• /history 最近計算紀錄\n• /help 顯示說明"
}
