package phaser

// Game is the engine context render textures are created against. It owns
// the renderer, the default texture filter, an optional host GPU device
// handle, and the keyed texture manager.
//
// A Game carries no frame loop of its own; driving frames is the host
// application's concern.
type Game struct {
	renderer Renderer
	filter   Filter
	device   DeviceHandle
	textures *TextureManager
}

// NewGame creates an engine context. Without options it composites in
// software with FilterLinear as the default texture filter.
func NewGame(opts ...GameOption) *Game {
	options := defaultGameOptions()
	for _, opt := range opts {
		opt(&options)
	}

	renderer := options.renderer
	if renderer == nil {
		renderer = NewSoftwareRenderer()
	}

	g := &Game{
		renderer: renderer,
		filter:   options.filter,
		device:   options.device,
		textures: NewTextureManager(),
	}
	Logger().Info("game created", "filter", g.filter.String(), "gpu", g.device != nil)
	return g
}

// Renderer returns the game's renderer.
func (g *Game) Renderer() Renderer { return g.renderer }

// DefaultFilter returns the sampling mode textures inherit when none is
// set at construction.
func (g *Game) DefaultFilter() Filter { return g.filter }

// Device returns the host GPU device handle, or nil when running without
// one.
func (g *Game) Device() DeviceHandle { return g.device }

// Textures returns the game's keyed texture manager. Registration is
// always explicit; creating a RenderTexture never touches the manager.
func (g *Game) Textures() *TextureManager { return g.textures }
