package metadata

/**
 * @brief Decoded texture pixels, RGBA8, rows ordered bottom to top
 * as OpenGL expects.
 */
type TextureData struct {
	/** @brief The texture width. */
	Width uint32
	/** @brief The texture height. */
	Height uint32
	/** @brief Tightly packed RGBA pixels. */
	Pixels []uint8
	/** @brief Indicates if any pixel is not fully opaque. */
	HasTransparency bool
}

/**
 * @brief A texture bound to an object.
 */
type Texture struct {
	/** @brief The file name shown in the GUI. */
	Name string
	/** @brief The full path the texture was read from. */
	Path string
	/** @brief The texture width. */
	Width uint32
	/** @brief The texture height. */
	Height uint32
}
