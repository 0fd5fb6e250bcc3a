package email

import (
	"fmt"
	htemplate "html/template"
	"os"
	"path/filepath"
	"sort"
	ttemplate "text/template"

	"github.com/dropDatabas3/courrier/internal/observability/logger"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// CompiledPair es una entrada del cache: el par de templates compilados
// (HTML + texto plano) de un bundle. Inmutable una vez insertada.
type CompiledPair struct {
	HTML *htemplate.Template
	Text *ttemplate.Template
}

// StoreStatus es una foto del estado del cache, para visibilidad operativa.
type StoreStatus struct {
	Size  int      `json:"size"`
	Names []string `json:"names"`
}

// Store carga bundles de templates desde disco (<dir>/<name>.html +
// <dir>/<name>.txt), los compila y cachea el resultado por nombre.
//
// El cache no expira ni tiene límite de tamaño: el set de templates es chico
// y fijo. Clear() permite evictar todo explícitamente (ej: deploy de
// templates en caliente).
type Store struct {
	dir   string
	cache *gocache.Cache
	sf    singleflight.Group
}

// NewStore crea un Store sobre el directorio de templates dado.
func NewStore(dir string) *Store {
	return &Store{
		dir:   dir,
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retorna el par compilado para name, cargándolo de disco la primera vez.
// Llamadas subsiguientes con el mismo nombre no vuelven a tocar el disco.
// Cargas concurrentes del mismo nombre se deduplican con singleflight.
func (s *Store) Get(name string) (*CompiledPair, error) {
	if v, ok := s.cache.Get(name); ok {
		return v.(*CompiledPair), nil
	}

	v, err, _ := s.sf.Do(name, func() (any, error) {
		// Re-chequear: otro vuelo pudo haber cargado mientras esperábamos.
		if v, ok := s.cache.Get(name); ok {
			return v, nil
		}

		pair, err := s.load(name)
		if err != nil {
			return nil, err
		}

		s.cache.Set(name, pair, gocache.NoExpiration)
		logger.L().Info("template compiled and cached",
			logger.Component("TemplateStore"),
			logger.Template(name),
		)
		return pair, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*CompiledPair), nil
}

// Clear evicta todas las entradas del cache.
func (s *Store) Clear() {
	s.cache.Flush()
	logger.L().Info("template cache cleared", logger.Component("TemplateStore"))
}

// Status retorna la cantidad de entradas y los nombres cacheados.
func (s *Store) Status() StoreStatus {
	items := s.cache.Items()
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)
	return StoreStatus{Size: len(names), Names: names}
}

// load lee y compila el bundle desde disco.
func (s *Store) load(name string) (*CompiledPair, error) {
	read := func(ext string) (string, error) {
		b, err := os.ReadFile(filepath.Join(s.dir, name+ext))
		return string(b), err
	}

	htmlSrc, err := read(".html")
	if err != nil {
		return nil, fmt.Errorf("%w: %s.html: %v", ErrTemplateLoad, name, err)
	}
	textSrc, err := read(".txt")
	if err != nil {
		return nil, fmt.Errorf("%w: %s.txt: %v", ErrTemplateLoad, name, err)
	}

	htmlTpl, err := htemplate.New(name + "_html").Parse(htmlSrc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.html: %v", ErrTemplateLoad, name, err)
	}
	textTpl, err := ttemplate.New(name + "_txt").Parse(textSrc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.txt: %v", ErrTemplateLoad, name, err)
	}

	return &CompiledPair{HTML: htmlTpl, Text: textTpl}, nil
}
