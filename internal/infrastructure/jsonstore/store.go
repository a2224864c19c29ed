// Package jsonstore implementa los repositorios de dominio sobre archivos
// JSON planos (un arreglo de objetos por archivo, UTF-8, editable a mano).
//
// Modelo: cada repositorio carga su archivo una vez al construirse y mantiene
// la lista en memoria; toda mutación reescribe el archivo completo. Un archivo
// ilegible al abrir degrada a lista vacía; un fallo al guardar se registra y
// la sesión continúa con el estado en memoria.
package jsonstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// collection maneja la lista en memoria y el ciclo cargar/guardar de un archivo.
type collection[T any] struct {
	mu    sync.Mutex
	path  string
	items []*T
	log   zerolog.Logger
}

func openCollection[T any](path string, log zerolog.Logger) *collection[T] {
	c := &collection[T]{
		path: path,
		log:  log.With().Str("archivo", filepath.Base(path)).Logger(),
	}
	c.load()
	return c
}

func (c *collection[T]) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.log.Warn().Err(err).Msg("no se pudo leer el archivo de datos, iniciando con lista vacía")
		}
		return
	}
	if err := json.Unmarshal(data, &c.items); err != nil {
		c.log.Warn().Err(err).Msg("archivo de datos corrupto, iniciando con lista vacía")
		c.items = nil
	}
}

// save reescribe el archivo completo. Escribe a un temporal y renombra encima
// del original para que un crash a media escritura no trunque los datos.
func (c *collection[T]) save() {
	if err := c.writeFile(); err != nil {
		c.log.Error().Err(err).Msg("no se pudo guardar el archivo de datos")
	}
}

func (c *collection[T]) writeFile() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	items := c.items
	if items == nil {
		items = []*T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.path)
}
