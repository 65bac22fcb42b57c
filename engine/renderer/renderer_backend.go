package renderer

// RendererBackendType selects the GPU API behind a Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU draws through WebGPU (wgpu-native).
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how finished frames reach the display.
type PresentMode int

const (
	// PresentModeVSync presents on vertical blank (FIFO). No tearing; the frame
	// rate follows the monitor. This is the default.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents immediately. Lowest latency, may tear.
	PresentModeUncapped
)

func (m PresentMode) String() string {
	switch m {
	case PresentModeVSync:
		return "vsync"
	case PresentModeUncapped:
		return "uncapped"
	}
	return "unknown"
}

// MSAASampleCount is the sample count of the color and depth attachments.
// WebGPU only guarantees 1 and 4.
type MSAASampleCount uint32

const (
	// MSAAOff renders one sample per pixel.
	MSAAOff MSAASampleCount = 1

	// MSAA4x resolves four samples per pixel. This is the default.
	MSAA4x MSAASampleCount = 4
)

// RendererBackend is what the Renderer drives. It embeds the interface of the
// selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
