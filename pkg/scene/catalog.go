// catalog.go - The store listing: icon, feature graphic and five phone screenshots.
package scene

import (
	"image"

	"github.com/xob0t/storeshots/pkg/canvas"
	"github.com/xob0t/storeshots/pkg/fonts"
	"github.com/xob0t/storeshots/pkg/gradient"
	"github.com/xob0t/storeshots/pkg/icon"
	"github.com/xob0t/storeshots/pkg/layout"
	"github.com/xob0t/storeshots/pkg/palette"
)

// Output sizes.
const (
	IconSize     = 512
	BannerWidth  = 1024
	BannerHeight = 500
	PhoneWidth   = 1080
	PhoneHeight  = 1920
)

const (
	appTitle   = "Secure Telegram"
	appVersion = "v0.2.2"
	navTop     = 1820
)

// Catalog returns every scene of the store listing in output order.
func Catalog() []Scene {
	p := palette.Default
	return []Scene{
		iconScene(),
		featureScene(p),
		homeScene(p),
		chatScene(p),
		settingsScene(p),
		privacyScene(p),
		aboutScene(p),
	}
}

// Find returns the catalog scene called name.
func Find(name string) (Scene, bool) {
	for _, s := range Catalog() {
		if s.Name == name {
			return s, true
		}
	}
	return Scene{}, false
}

// Names lists the catalog scene names in output order.
func Names() []string {
	cat := Catalog()
	out := make([]string, len(cat))
	for i, s := range cat {
		out[i] = s.Name
	}
	return out
}

func iconScene() Scene {
	return Scene{
		Name:       "icon",
		File:       "app_icon_512.png",
		Width:      IconSize,
		Height:     IconSize,
		Background: gradient.Solid(palette.Default.Color(palette.Surface)),
		Regions: []Region{
			ShieldMark{
				Offset:       canvas.Pt(92, 60),
				Scale:        1,
				Width:        8,
				Fill:         palette.BackgroundDark,
				Outline:      palette.Accent,
				Glint:        palette.Accent,
				LockSize:     image.Pt(120, 240),
				LockBody:     palette.AccentLight,
				LockOutline:  palette.Surface,
				LockHole:     palette.BackgroundDark,
				LockOutlineW: 4,
				LockShackleW: 12,
			},
		},
	}
}

func featureScene(p palette.Palette) Scene {
	return Scene{
		Name:   "feature",
		File:   "feature_graphic_1024x500.png",
		Width:  BannerWidth,
		Height: BannerHeight,
		Background: gradient.Spec{
			Axis:  gradient.Horizontal,
			Start: p.Color(palette.GradientTop),
			End:   p.Color(palette.GradientSea),
		},
		Regions: []Region{
			ShieldMark{
				Offset:       canvas.Pt(40, 50),
				Scale:        1,
				Width:        6,
				Fill:         palette.Surface,
				Outline:      palette.AccentLight,
				LockSize:     image.Pt(100, 210),
				LockBody:     palette.AccentLight,
				LockOutline:  palette.BackgroundDark,
				LockHole:     palette.Surface,
				LockOutlineW: 3,
				LockShackleW: 10,
			},
			BannerText{
				X:         400,
				Right:     980,
				TitleY:    130,
				Title:     appTitle,
				Subtitle:  "Privacy-Focused Messenger",
				DividerY:  260,
				FeaturesY: 285,
				LineStep:  32,
				Features: []string{
					"• Post-Quantum Encryption",
					"• Obfs4 Traffic Obfuscation",
					"• P2P Communication",
					"• Anti-Censorship",
				},
				Version:   appVersion,
				VersionAt: image.Pt(900, 450),
			},
		},
	}
}

func phone(name, file string, bg gradient.Spec, regions ...Region) Scene {
	return Scene{
		Name:       name,
		File:       file,
		Width:      PhoneWidth,
		Height:     PhoneHeight,
		Background: bg,
		Phone:      true,
		Clock:      "18:30",
		Regions:    regions,
	}
}

func vertical(p palette.Palette, top, bottom palette.Name) gradient.Spec {
	return gradient.Spec{Axis: gradient.Vertical, Start: p.Color(top), End: p.Color(bottom)}
}

func homeScene(p palette.Palette) Scene {
	return phone("home", "screenshot_1_home.png",
		vertical(p, palette.GradientTop, palette.GradientFoliage),
		Header{X: 20, Y: 50, Title: appTitle, Size: 28, Subtitle: "Чаты"},
		SearchBar{Rect: image.Rect(20, 120, 1060, 170), Placeholder: "Поиск..."},
		ChatList{
			List: layout.List{Origin: 200, Left: 20, Right: 1060, Height: 80, Gap: 5},
			Rows: []ChatRow{
				{Name: "Павел Дуров", Preview: "Добро пожаловать в Secure Telegram!", Time: "18:25", Unread: true, UnreadCount: 3},
				{Name: "Алиса", Preview: "Привет! Как тебе новое приложение?", Time: "18:20", Unread: true, UnreadCount: 1},
				{Name: "Боб", Preview: "Ключи верифицированы", Time: "17:45"},
				{Name: "Charlie", Preview: "Kyber-1024 работает отлично", Time: "16:30"},
				{Name: "Новости", Preview: "Обновление v0.2.2 доступно", Time: "15:00"},
			},
		},
		BottomNav{Top: navTop, Items: []NavItem{
			{Glyph: icon.GlyphHome, Active: true},
			{Glyph: icon.GlyphChat},
			{Glyph: icon.GlyphPhone},
			{Glyph: icon.GlyphPeople},
			{Glyph: icon.GlyphGear},
		}},
	)
}

func chatScene(p palette.Palette) Scene {
	return phone("chat", "screenshot_2_chat.png",
		vertical(p, palette.BackgroundDeep, palette.GradientNight),
		ChatHeader{Top: StatusBarHeight, Name: "Алиса", Status: "в сети"},
		MessageThread{
			List:        layout.List{Origin: 140, Height: 55, Gap: 15},
			Margin:      30,
			BubbleWidth: 490,
			Rows: []MessageRow{
				{Side: Incoming, Text: "Привет!", Time: "18:15"},
				{Side: Outgoing, Text: "Привет! Как тебе Secure Telegram?", Time: "18:16"},
				{Side: Incoming, Text: "Отлично! Шифрование работает?", Time: "18:17"},
				{Side: Outgoing, Text: "Да! Kyber-1024 + XChaCha20", Time: "18:18"},
				{Side: Incoming, Text: "Круто! Ключи уже верифицированы?", Time: "18:19"},
				{Side: Outgoing, Text: "Да, всё зелёное!", Time: "18:20"},
			},
		},
		InputBar{Top: navTop, Placeholder: "Сообщение..."},
	)
}

func settingsScene(p palette.Palette) Scene {
	items := func(labels ...string) []SettingsItem {
		out := make([]SettingsItem, len(labels))
		for i, l := range labels {
			out[i] = SettingsItem{Label: l}
		}
		return out
	}
	return phone("settings", "screenshot_3_settings.png",
		vertical(p, palette.GradientTop, palette.GradientMoss),
		Header{X: 20, Y: 55, Title: "Настройки", Size: 32},
		SettingsList{
			Top: 130, Left: 20, Right: 1060,
			Sections: []SettingsSection{
				{Icon: icon.GlyphLock, Title: "Безопасность", Items: items("Post-Quantum шифрование", "Obfs4 обфускация", "Верификация ключей")},
				{Icon: icon.GlyphGlobe, Title: "Сеть", Items: items("DNS over HTTPS", "Прокси: Выключено", "P2P режим")},
				{Icon: icon.GlyphPhone, Title: "Приложение", Items: items("Тема: Зелёная", "Язык: Русский", "Версия: 0.2.2")},
			},
		},
	)
}

func privacyScene(p palette.Palette) Scene {
	check := func(title, desc string) FeatureRow {
		return FeatureRow{Icon: icon.GlyphCheck, Title: title, Description: desc}
	}
	return phone("privacy", "screenshot_4_privacy.png",
		gradient.Solid(p.Color(palette.BackgroundDeep)),
		Header{X: 20, Y: 55, Title: "Приватность", Size: 32},
		Badge{
			Rect:    image.Rect(340, 150, 740, 550),
			Fill:    palette.BackgroundDark,
			Outline: palette.Accent,
			Width:   8,
			Lock:    image.Rect(460, 230, 620, 470),
		},
		StatusLine{Y: 590, Glyph: icon.GlyphCheck, Text: "Всё защищено"},
		FeatureList{
			List: layout.List{Origin: 700, Left: 40, Right: 1040, Height: 70, Gap: 10},
			Rows: []FeatureRow{
				check("Kyber-1024 шифрование", "Постквантовая защита"),
				check("XChaCha20-Poly1305", "Симметричное шифрование"),
				check("X25519", "Обмен ключами"),
				check("Obfs4", "Маскировка трафика"),
				check("DNS over HTTPS", "Обход DNS блокировок"),
				check("P2P коммуникация", "Без центрального сервера"),
			},
		},
	)
}

func aboutScene(p palette.Palette) Scene {
	mid := PhoneWidth / 2
	return phone("about", "screenshot_5_about.png",
		vertical(p, palette.GradientTop, palette.GradientFern),
		Badge{
			Rect:    image.Rect(390, 100, 690, 400),
			Fill:    palette.Surface,
			Outline: palette.Accent,
			Width:   6,
		},
		ShieldMark{
			Offset:       canvas.Pt(458, 148),
			Scale:        0.5,
			Width:        8,
			Fill:         palette.BackgroundDark,
			Outline:      palette.Accent,
			Glint:        palette.Accent,
			LockSize:     image.Pt(60, 120),
			LockBody:     palette.AccentLight,
			LockOutline:  palette.Surface,
			LockHole:     palette.BackgroundDark,
			LockOutlineW: 2,
			LockShackleW: 6,
		},
		Label{X: mid, Y: 430, Text: appTitle, Weight: fonts.Bold, Size: 36, Color: palette.Text, Center: true},
		Label{X: mid, Y: 480, Text: appVersion, Size: 20, Color: palette.AccentLight, Center: true},
		Label{X: mid, Y: 530, Text: "Децентрализованный мессенджер", Size: 22, Color: palette.Text, Center: true},
		Label{X: mid, Y: 565, Text: "с постквантовым шифрованием", Size: 20, Color: palette.AccentLight, Center: true},
		InfoList{
			List:   layout.List{Origin: 680, Left: 100, Right: 980, Height: 40, Gap: 10},
			ValueX: 350,
			Rows: []InfoRow{
				{Label: "Движок:", Value: "Rust + Kotlin"},
				{Label: "Telegram API:", Value: "TDLib"},
				{Label: "Шифрование:", Value: "Kyber-1024 + XChaCha20"},
				{Label: "Лицензия:", Value: "MIT"},
			},
		},
		LinkCard{
			Rect:  image.Rect(100, 850, 980, 920),
			Title: "github.com/zametkikostik",
			Path:  "/secure-telegram-client",
		},
		ButtonRow{
			Top: 1000, Height: 70, Left: 100, Right: 980, Gap: 40,
			Buttons: []Button{
				{Label: "Проверить обновления", Primary: true},
				{Label: "Исходный код"},
			},
		},
		Footer{Y: 1800, Before: "Made with", Glyph: icon.GlyphHeart, After: "for Privacy"},
	)
}
