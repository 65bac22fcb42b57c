package bind_group_provider

// BufferWrite stages bytes for one binding of a provider. A batch of writes is
// flushed to the queue before the frame's render pass is encoded, so every
// draw in the frame sees the same data.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	// Offset is the byte offset into the binding's buffer.
	Offset uint64
	Data   []byte
}

// Size returns the number of bytes the write covers, including its offset.
func (w BufferWrite) Size() uint64 {
	return w.Offset + uint64(len(w.Data))
}

// Fits reports whether the write stays inside the binding's allocated capacity.
// Writes against a binding without a buffer never fit.
func (w BufferWrite) Fits() bool {
	if w.Provider == nil || w.Provider.Buffer(w.Binding) == nil {
		return false
	}
	return w.Size() <= w.Provider.Capacity(w.Binding)
}
