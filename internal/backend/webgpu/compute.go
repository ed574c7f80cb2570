//go:build windows

package webgpu

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
)

// compileShader compiles WGSL shader code into a ShaderModule.
// Results are cached in the Backend's shaders map.
func (b *Backend) compileShader(name, code string) *wgpu.ShaderModule {
	b.mu.RLock()
	if shader, exists := b.shaders[name]; exists {
		b.mu.RUnlock()
		return shader
	}
	b.mu.RUnlock()

	shader := b.device.CreateShaderModuleWGSL(code)

	b.mu.Lock()
	b.shaders[name] = shader
	b.mu.Unlock()

	return shader
}

// getOrCreatePipeline returns a cached ComputePipeline or creates a new one.
func (b *Backend) getOrCreatePipeline(name string, shader *wgpu.ShaderModule) *wgpu.ComputePipeline {
	b.mu.RLock()
	if pipeline, exists := b.pipelines[name]; exists {
		b.mu.RUnlock()
		return pipeline
	}
	b.mu.RUnlock()

	// Auto layout (nil layout).
	pipeline := b.device.CreateComputePipelineSimple(nil, shader, "main")

	b.mu.Lock()
	b.pipelines[name] = pipeline
	b.mu.Unlock()

	return pipeline
}

// createBuffer creates a GPU buffer initialized with data.
func (b *Backend) createBuffer(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	size := uint64(len(data))
	buffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(unsafe.Slice((*byte)(mappedPtr), size), data)
	buffer.Unmap()

	return buffer
}

// paramsBytes packs the Params uniform: size u32, p0 f32, p1 f32, padded to 16 bytes.
func paramsBytes(size int, p0, p1 float32) []byte {
	params := make([]byte, 16)
	//nolint:gosec // G115: element counts are non-negative and bounded by buffer limits
	binary.LittleEndian.PutUint32(params[0:4], uint32(size))
	binary.LittleEndian.PutUint32(params[4:8], math.Float32bits(p0))
	binary.LittleEndian.PutUint32(params[8:12], math.Float32bits(p1))
	return params
}

// readBuffer reads data back from a GPU buffer through a staging buffer.
func (b *Backend) readBuffer(srcBuffer *wgpu.Buffer, size uint64) []byte {
	stagingBuffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer stagingBuffer.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(srcBuffer, 0, stagingBuffer, 0, size)
	b.queue.Submit(encoder.Finish(nil))

	check("map staging buffer", stagingBuffer.MapAsync(b.device, wgpu.MapModeRead, 0, size))

	mappedPtr := stagingBuffer.GetMappedRange(0, size)
	result := make([]byte, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(result, unsafe.Slice((*byte)(mappedPtr), size))
	stagingBuffer.Unmap()

	return result
}

// runElementwise dispatches an element-wise shader over float32 inputs of
// numElements each and copies the result into dst.
// wgpu failures panic; callers convert them with exceptions.TryCatch.
func (b *Backend) runElementwise(shaderName, shaderCode string, inputs [][]byte, dst []byte, numElements int, p0, p1 float32) {
	shader := b.compileShader(shaderName, shaderCode)
	pipeline := b.getOrCreatePipeline(shaderName, shader)

	resultSize := uint64(len(dst))
	entries := make([]wgpu.BindGroupEntry, 0, len(inputs)+2)
	for i, data := range inputs {
		buffer := b.createBuffer(data, wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
		defer buffer.Release()
		//nolint:gosec // G115: binding indices are small
		entries = append(entries, wgpu.BufferBindingEntry(uint32(i), buffer, 0, resultSize))
	}

	bufferResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	defer bufferResult.Release()
	//nolint:gosec // G115: binding indices are small
	entries = append(entries, wgpu.BufferBindingEntry(uint32(len(inputs)), bufferResult, 0, resultSize))

	bufferParams := b.createBuffer(paramsBytes(numElements, p0, p1), wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)
	defer bufferParams.Release()
	//nolint:gosec // G115: binding indices are small
	entries = append(entries, wgpu.BufferBindingEntry(uint32(len(inputs)+1), bufferParams, 0, 16))

	bindGroup := b.device.CreateBindGroupSimple(pipeline.GetBindGroupLayout(0), entries)
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)
	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)
	//nolint:gosec // G115: workgroup count is non-negative
	workgroups := uint32((numElements + workgroupSize - 1) / workgroupSize)
	computePass.DispatchWorkgroups(workgroups, 1, 1)
	computePass.End()
	b.queue.Submit(encoder.Finish(nil))

	copy(dst, b.readBuffer(bufferResult, resultSize))
}
