package phaser

// GameOption configures a Game during creation.
//
// Example:
//
//	// Default software rendering
//	game := phaser.NewGame()
//
//	// Custom renderer (dependency injection)
//	game := phaser.NewGame(phaser.WithRenderer(gpuRenderer))
type GameOption func(*gameOptions)

// gameOptions holds optional configuration for Game creation.
type gameOptions struct {
	renderer Renderer
	filter   Filter
	device   DeviceHandle
}

// defaultGameOptions returns the default game options.
func defaultGameOptions() gameOptions {
	return gameOptions{
		renderer: nil, // Will be set to SoftwareRenderer if nil
		filter:   FilterLinear,
	}
}

// WithRenderer sets a custom renderer for the Game. Use this for dependency
// injection of GPU or recording renderers.
func WithRenderer(r Renderer) GameOption {
	return func(o *gameOptions) {
		o.renderer = r
	}
}

// WithDefaultFilter sets the sampling mode textures inherit when none is
// specified at construction. The default is FilterLinear.
func WithDefaultFilter(f Filter) GameOption {
	return func(o *gameOptions) {
		o.filter = f
	}
}

// WithDevice attaches a host GPU device handle to the Game so GPU-backed
// renderers and targets can be created against it.
func WithDevice(h DeviceHandle) GameOption {
	return func(o *gameOptions) {
		o.device = h
	}
}

// TextureOption configures a RenderTexture during creation.
//
// Example:
//
//	rt, err := phaser.NewRenderTexture(game,
//	    phaser.WithSize(256, 128),
//	    phaser.WithResolution(2),
//	    phaser.WithFilter(phaser.FilterNearest),
//	    phaser.WithKey("minimap"),
//	)
type TextureOption func(*textureOptions)

// textureOptions holds optional configuration for RenderTexture creation.
type textureOptions struct {
	width      int
	height     int
	resolution float64
	key        string
	filter     Filter
	filterSet  bool
}

// defaultTextureOptions returns the default texture options.
func defaultTextureOptions() textureOptions {
	return textureOptions{
		width:      100,
		height:     100,
		resolution: 1,
	}
}

// WithSize sets the texture's logical dimensions. The default is 100x100.
func WithSize(width, height int) TextureOption {
	return func(o *textureOptions) {
		o.width = width
		o.height = height
	}
}

// WithResolution sets the device pixel multiplier. The backing surface is
// allocated at width*resolution x height*resolution. The default is 1.
func WithResolution(resolution float64) TextureOption {
	return func(o *textureOptions) {
		o.resolution = resolution
	}
}

// WithKey attaches an opaque cache-lookup key. The key is carried as
// metadata only; no uniqueness is enforced and no registration happens at
// construction.
func WithKey(key string) TextureOption {
	return func(o *textureOptions) {
		o.key = key
	}
}

// WithFilter overrides the game's default sampling mode for this texture.
func WithFilter(f Filter) TextureOption {
	return func(o *textureOptions) {
		o.filter = f
		o.filterSet = true
	}
}
