package server

import (
	"bytes"
	"fmt"
	"html/template"
	"image/png"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/toastate/icongen/internal/tlogger"
	"github.com/toastate/icongen/internal/watcher"
	"github.com/toastate/icongen/pkg/config"
	"github.com/toastate/icongen/pkg/generator"
	"github.com/toastate/icongen/pkg/iconsvg"
	"github.com/toastate/icongen/pkg/naming"

	_ "embed"
)

//go:embed gallery.html
var galleryHTML string

var galleryTemplate = template.Must(template.New("gallery").Parse(galleryHTML))

var colorRegexp = regexp.MustCompile(`^[#a-zA-Z0-9(),.% ]{1,64}$`)

const maxPreviewSize = 1024

var upgrader = websocket.Upgrader{
	HandshakeTimeout: 10 * time.Second,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Server struct {
	port         string
	liveReload   bool
	reloadBroker *Broker
	generator    *generator.Generator
}

func NewServer(iconsDir, outDir, port string, conf *config.Configuration) *Server {
	s := &Server{
		port:         port,
		reloadBroker: newBroker(),
		generator:    generator.NewGenerator(iconsDir, outDir, conf),
	}
	go s.reloadBroker.Start()
	return s
}

// TriggerReload tells every open gallery page to reload.
func (s *Server) TriggerReload() {
	s.reloadBroker.Publish(struct{}{})
}

// Start generates the library once, then serves the preview gallery. With
// withWatcher the library is regenerated whenever an icon changes.
func (s *Server) Start(withWatcher bool) error {
	err := s.generator.Generate()
	if err != nil {
		return err
	}

	if withWatcher {
		updates, err := watcher.StartWatcher(s.generator.IconsDir())
		if err != nil {
			tlogger.Error("msg", "Could not start watcher", "path", s.generator.IconsDir(), "err", err)
			return err
		}
		s.liveReload = true
		go s.generator.Watch(updates, s.TriggerReload)
	}

	// We use println here so the address can be copied or opened directly from the terminal
	fmt.Println("Listening on http://localhost:" + s.port)

	return http.ListenAndServe(":"+s.port, s.Router())
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.galleryHandler).Methods(http.MethodGet)
	r.HandleFunc("/__internal/livereload", s.livereloadHandler)
	r.HandleFunc("/icons/{variant}/{name:[A-Za-z0-9_.-]+}.svg", s.svgHandler).Methods(http.MethodGet)
	r.HandleFunc("/icons/{variant}/{name:[A-Za-z0-9_.-]+}.png", s.pngHandler).Methods(http.MethodGet)
	return r
}

type galleryIcon struct {
	Name      string
	Component string
	Title     string
}

type galleryVariant struct {
	Variant string
	Icons   []galleryIcon
}

type galleryData struct {
	Color      string
	Size       int
	LiveReload bool
	Variants   []galleryVariant
}

func (s *Server) galleryHandler(w http.ResponseWriter, r *http.Request) {
	reg := s.generator.Registry()
	if reg == nil {
		http.Error(w, "icons not generated yet", http.StatusServiceUnavailable)
		return
	}
	values, err := s.values(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data := galleryData{Color: values.Color, Size: values.Size, LiveReload: s.liveReload}
	for _, variant := range reg.Variants() {
		gv := galleryVariant{Variant: variant}
		for _, a := range reg.Assets(variant) {
			gv.Icons = append(gv.Icons, galleryIcon{Name: a.Name, Component: a.Component, Title: naming.Title(naming.Pascal(a.Name))})
		}
		data.Variants = append(data.Variants, gv)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = galleryTemplate.Execute(w, data)
	if err != nil {
		tlogger.Error("msg", "templater", "template", "gallery", "err", err)
	}
}

func (s *Server) livereloadHandler(w http.ResponseWriter, r *http.Request) {
	tlogger.Debug("msg", "WS Established")

	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		tlogger.Warn("msg", "Reload socket upgrade failed", "err", err)
		return
	}
	defer c.Close()

	// the page never writes, a read only returns once the socket is gone
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.NextReader(); err != nil {
				return
			}
		}
	}()

	waitCh := s.reloadBroker.Subscribe()
	defer s.reloadBroker.Unsubscribe(waitCh)
	select {
	case <-waitCh:
		err = c.WriteMessage(websocket.TextMessage, []byte("reload"))
		if err != nil {
			tlogger.Warn("msg", "Reload socket error", "err", err)
		}
	case <-closed:
		tlogger.Debug("msg", "WS Closed")
	}
}

func (s *Server) svgHandler(w http.ResponseWriter, r *http.Request) {
	svg, _, ok := s.renderIcon(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}

func (s *Server) pngHandler(w http.ResponseWriter, r *http.Request) {
	svg, values, ok := s.renderIcon(w, r)
	if !ok {
		return
	}
	img, err := iconsvg.Rasterize(svg, values.Size, "black")
	if err != nil {
		tlogger.Error("msg", "Rasterization failed", "path", r.URL.Path, "err", err)
		http.Error(w, "Internal error: can't rasterize icon", http.StatusInternalServerError)
		return
	}

	buf := &bytes.Buffer{}
	err = png.Encode(buf, img)
	if err != nil {
		http.Error(w, "Internal error: can't encode icon", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

// renderIcon resolves the icon of the request and renders it as the
// generated component would. It answers the request itself on failure.
func (s *Server) renderIcon(w http.ResponseWriter, r *http.Request) ([]byte, iconsvg.Values, bool) {
	vars := mux.Vars(r)
	variant, name := vars["variant"], vars["name"]

	reg := s.generator.Registry()
	if reg == nil {
		http.Error(w, "icons not generated yet", http.StatusServiceUnavailable)
		return nil, iconsvg.Values{}, false
	}

	asset, ok := reg.Lookup(name, variant)
	if !ok {
		tlogger.Warn("msg", "Unknown icon", "name", name, "variant", variant)
		http.Error(w, "404 icon not found", http.StatusNotFound)
		return nil, iconsvg.Values{}, false
	}

	values, err := s.values(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, iconsvg.Values{}, false
	}

	root, err := s.generator.LoadIcon(asset)
	if err != nil {
		tlogger.Error("msg", "Could not load icon", "file", asset.Source, "err", err)
		http.Error(w, "Internal error: can't load icon", http.StatusInternalServerError)
		return nil, iconsvg.Values{}, false
	}

	return iconsvg.Render(root, values), values, true
}

func (s *Server) values(r *http.Request) (iconsvg.Values, error) {
	v := iconsvg.Values{
		Color: iconsvg.ColorToken,
		Size:  s.generator.Config().DefaultSize,
	}

	q := r.URL.Query()
	if c := q.Get("color"); c != "" {
		if !colorRegexp.MatchString(c) {
			return v, fmt.Errorf("invalid color %q", c)
		}
		v.Color = c
	}
	if sz := q.Get("size"); sz != "" {
		n, err := strconv.Atoi(sz)
		if err != nil || n <= 0 || n > maxPreviewSize {
			return v, fmt.Errorf("invalid size %q", sz)
		}
		v.Size = n
	}
	return v, nil
}
