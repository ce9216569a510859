package utils

import (
	"embed"
	"path"
	"path/filepath"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

//go:embed i18n/*.yaml
var messageFiles embed.FS

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
)

// InitI18NBundle loads the built-in dashboard messages plus every yaml
// message file under dir. Only the first call has effect.
func InitI18NBundle(dir string) error {
	var err error
	bundleOnce.Do(func() {
		bundle, err = newBundle(dir)
	})
	return err
}

func newBundle(dir string) (*i18n.Bundle, error) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	entries, err := messageFiles.ReadDir("i18n")
	if nil != err {
		return b, err
	}
	for _, e := range entries {
		data, err := messageFiles.ReadFile(path.Join("i18n", e.Name()))
		if nil != err {
			return b, err
		}
		if _, err := b.ParseMessageFileBytes(data, e.Name()); nil != err {
			return b, err
		}
	}

	if dir == "" {
		return b, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if nil != err {
		return b, err
	}
	for _, f := range files {
		if _, err := b.LoadMessageFile(f); nil != err {
			return b, err
		}
	}

	return b, nil
}

// NewLocalizer returns a localizer for the preferred languages, falling back
// to english
func NewLocalizer(langs ...string) *i18n.Localizer {
	if err := InitI18NBundle(""); nil != err {
		log.WithFields(log.Fields{"prefix": "i18n", "error": err}).Error("load message files")
	}
	return i18n.NewLocalizer(bundle, langs...)
}

// Localize translates a message id, returning fallback when the id is unknown
func Localize(l *i18n.Localizer, id, fallback string) string {
	if l == nil {
		return fallback
	}

	s, err := l.Localize(&i18n.LocalizeConfig{MessageID: id})
	if nil != err || s == "" {
		return fallback
	}
	return s
}

// LanguageTag returns the best supported tag for a language string
func LanguageTag(lang string) language.Tag {
	matcher := language.NewMatcher([]language.Tag{language.English, language.SimplifiedChinese})
	tag, _, _ := matcher.Match(language.Make(lang))
	return tag
}
