package textgen

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

// Supported template languages.
const (
	LanguageIndonesian = "id"
	LanguageEnglish    = "en"
)

// The fixed pickup-notification prompts. The two variants are selectable per
// request and intentionally kept separate, never merged.
const promptIndonesian = `Yth. {{.UserName}},

Ini adalah pemberitahuan untuk jadwal penjemputan sampah Anda:

Tanggal: {{.PickupDate}}
Waktu: {{.PickupTime}}
Jenis Sampah: {{.WasteType}}
Jumlah: {{.WasteAmountKg}} kg

Anda mendapatkan {{.PointsEarned}} poin dari penjemputan ini! Setiap poin bernilai {{.ExchangeRate}} {{.Currency}} yang bisa Anda tukarkan menjadi uang tunai melalui aplikasi ZeroCycle.

Terima kasih atas kontribusi Anda untuk lingkungan yang lebih bersih!

Hormat kami,
Tim ZeroCycle`

const promptEnglish = `Dear {{.UserName}},

This is a notification for your scheduled waste pickup:

Date: {{.PickupDate}}
Time: {{.PickupTime}}
Waste Type: {{.WasteType}}
Amount: {{.WasteAmountKg}} kg

You earned {{.PointsEarned}} points from this pickup! Each point is worth {{.ExchangeRate}} {{.Currency}}, which you can exchange for cash through the ZeroCycle app.

Thank you for your contribution to a cleaner environment!

Best regards,
The ZeroCycle Team`

var prompts = map[string]*template.Template{
	LanguageIndonesian: template.Must(template.New(LanguageIndonesian).Parse(promptIndonesian)),
	LanguageEnglish:    template.Must(template.New(LanguageEnglish).Parse(promptEnglish)),
}

// SupportedLanguage reports whether a template variant exists for lang.
func SupportedLanguage(lang string) bool {
	_, ok := prompts[lang]
	return ok
}

// PickupNotificationInput is the field set substituted into the prompt.
type PickupNotificationInput struct {
	UserName      string
	PickupDate    string
	PickupTime    string
	WasteType     string
	WasteAmountKg float64
	PointsEarned  float64
	Currency      string
	ExchangeRate  int
	PhoneNumber   string
}

// promptView carries the input with numbers pre-formatted so whole values
// render without a decimal point (5 kg, 10 poin).
type promptView struct {
	UserName      string
	PickupDate    string
	PickupTime    string
	WasteType     string
	WasteAmountKg string
	PointsEarned  string
	Currency      string
	ExchangeRate  int
}

// RenderPrompt interpolates the fixed template for lang with the given
// fields. Deterministic: same input, same output.
func RenderPrompt(lang string, in PickupNotificationInput) (string, error) {
	tmpl, ok := prompts[lang]
	if !ok {
		return "", fmt.Errorf("unsupported template language %q", lang)
	}
	view := promptView{
		UserName:      in.UserName,
		PickupDate:    in.PickupDate,
		PickupTime:    in.PickupTime,
		WasteType:     in.WasteType,
		WasteAmountKg: formatNumber(in.WasteAmountKg),
		PointsEarned:  formatNumber(in.PointsEarned),
		Currency:      in.Currency,
		ExchangeRate:  in.ExchangeRate,
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, view); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
