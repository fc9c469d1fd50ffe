package services

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"eoapi/internal/models"
)

const (
	msgSwitchSucceeded   = "Switched to %s data source"
	msgRemoteUnavailable = "Remote data source unavailable"
	msgSwitchFailed      = "Failed to switch to %s data source"
	msgDataSourceLocal   = "local"
	msgDataSourceRemote  = "remote"
	msgExportFailed      = "Export failed"
	msgExportSucceeded   = "Exported to %s"
)

var supportedLocales = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var translations = map[language.Tag]map[string]string{
	language.English: {
		msgSwitchSucceeded:   "Switched to %s data source",
		msgRemoteUnavailable: "Remote data source unavailable",
		msgSwitchFailed:      "Failed to switch to %s data source",
		msgDataSourceLocal:   "local",
		msgDataSourceRemote:  "remote",
		msgExportFailed:      "Export failed",
		msgExportSucceeded:   "Exported to %s",
	},
	language.SimplifiedChinese: {
		msgSwitchSucceeded:   "成功切换到%s数据源",
		msgRemoteUnavailable: "远程数据源不可用",
		msgSwitchFailed:      "切换到%s数据源失败",
		msgDataSourceLocal:   "本地",
		msgDataSourceRemote:  "远程",
		msgExportFailed:      "导出失败",
		msgExportSucceeded:   "已导出到 %s",
	},
}

var (
	localeMatcher  = language.NewMatcher(supportedLocales)
	messageCatalog = buildCatalog()
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// LocaleSource reports the current UI locale, e.g. "en" or "zh-CN".
type LocaleSource interface {
	Locale() string
}

// Localizer renders user facing texts in the locale of the app settings.
type Localizer struct {
	locales LocaleSource
}

func NewLocalizer(locales LocaleSource) *Localizer {
	return &Localizer{locales: locales}
}

func (l *Localizer) printer() *message.Printer {
	locale := ""
	if l != nil && l.locales != nil {
		locale = l.locales.Locale()
	}
	_, idx, _ := localeMatcher.Match(language.Make(locale))
	return message.NewPrinter(supportedLocales[idx], message.Catalog(messageCatalog))
}

func (l *Localizer) DataSourceText(mode models.DataSourceMode) string {
	p := l.printer()
	if mode.IsRemote() {
		return p.Sprintf(msgDataSourceRemote)
	}
	return p.Sprintf(msgDataSourceLocal)
}

func (l *Localizer) SwitchSucceeded(mode models.DataSourceMode) string {
	return l.printer().Sprintf(msgSwitchSucceeded, l.DataSourceText(mode))
}

func (l *Localizer) SwitchFailed(mode models.DataSourceMode) string {
	return l.printer().Sprintf(msgSwitchFailed, l.DataSourceText(mode))
}

func (l *Localizer) RemoteUnavailable() string {
	return l.printer().Sprintf(msgRemoteUnavailable)
}

func (l *Localizer) ExportFailed() string {
	return l.printer().Sprintf(msgExportFailed)
}

func (l *Localizer) ExportSucceeded(path string) string {
	return l.printer().Sprintf(msgExportSucceeded, path)
}
