package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Temas reconocidos por la aplicación.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UIConfig geometría de la ventana principal.
type UIConfig struct {
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`
}

// Config preferencias de la aplicación, persistidas en config.json.
// Se lee una vez al arranque y se reescribe al cambiar de tema.
type Config struct {
	AppName string   `json:"app_name"`
	Version string   `json:"version"`
	Env     string   `json:"env"`
	Theme   string   `json:"theme"`
	DataDir string   `json:"data_dir"`
	UI      UIConfig `json:"ui"`

	path string
}

// Load lee config.json (si existe) con overrides por variables de entorno
// TIENDITA_*. Un archivo ausente o ilegible cae a los valores por defecto.
func Load(path string) *Config {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetEnvPrefix("TIENDITA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_name", "Tiendita de la Esquina")
	v.SetDefault("version", "2.0")
	v.SetDefault("env", "development")
	v.SetDefault("theme", ThemeLight)
	v.SetDefault("data_dir", "data")
	v.SetDefault("ui.window_width", 1400)
	v.SetDefault("ui.window_height", 800)

	_ = v.ReadInConfig() // ignoramos error: los defaults cubren el arranque

	return &Config{
		AppName: v.GetString("app_name"),
		Version: v.GetString("version"),
		Env:     v.GetString("env"),
		Theme:   validTheme(v.GetString("theme")),
		DataDir: v.GetString("data_dir"),
		UI: UIConfig{
			WindowWidth:  v.GetInt("ui.window_width"),
			WindowHeight: v.GetInt("ui.window_height"),
		},
		path: path,
	}
}

// ToggleTheme alterna light/dark, persiste y devuelve el tema resultante.
func (c *Config) ToggleTheme() (string, error) {
	if c.Theme == ThemeLight {
		c.Theme = ThemeDark
	} else {
		c.Theme = ThemeLight
	}
	return c.Theme, c.Save()
}

// Save reescribe config.json completo (temporal + rename).
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
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

// ProductsPath, UsersPath y SalesPath rutas de los tres archivos de datos.
func (c *Config) ProductsPath() string { return filepath.Join(c.DataDir, "productos.json") }
func (c *Config) UsersPath() string    { return filepath.Join(c.DataDir, "usuarios.json") }
func (c *Config) SalesPath() string    { return filepath.Join(c.DataDir, "ventas.json") }

func validTheme(s string) string {
	if s == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}
