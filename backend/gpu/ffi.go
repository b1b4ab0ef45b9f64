package gpu

import (
	"bytes"
	"unsafe"

	"github.com/mochi-sh/render/backend"
)

// procs is the resolved gpu_context_* function table. String arguments
// cross the boundary as null-terminated byte sequences; purego performs
// the encoding when the function is registered with a string parameter.
type procs struct {
	contextCreate        func(width, height uint32) uintptr
	contextDestroy       func(ctx uintptr)
	contextIsValid       func(ctx uintptr) bool
	contextGetBackend    func(ctx uintptr) uint32
	contextGetDeviceInfo func(ctx uintptr, info unsafe.Pointer)

	clear    func(ctx uintptr, r, g, b, a float32)
	viewport func(ctx uintptr, x, y int32, width, height uint32)
	present  func(ctx uintptr)

	createShader func(ctx uintptr, vertexSrc, fragmentSrc string) uint32
	useShader    func(ctx uintptr, shader uint32)
	deleteShader func(ctx uintptr, shader uint32)

	setUniformFloat func(ctx uintptr, name string, value float32)
	setUniformVec2  func(ctx uintptr, name string, x, y float32)
	setUniformVec3  func(ctx uintptr, name string, x, y, z float32)
	setUniformVec4  func(ctx uintptr, name string, x, y, z, w float32)
	setUniformMat4  func(ctx uintptr, name string, matrix unsafe.Pointer)

	createBuffer func(ctx uintptr, data unsafe.Pointer, size uint32) uint32
	bindBuffer   func(ctx uintptr, buffer uint32)
	deleteBuffer func(ctx uintptr, buffer uint32)

	createTexture func(ctx uintptr, width, height uint32, data unsafe.Pointer) uint32
	bindTexture   func(ctx uintptr, texture, slot uint32)
	deleteTexture func(ctx uintptr, texture uint32)

	drawArrays   func(ctx uintptr, mode uint32, first, count int32)
	drawElements func(ctx uintptr, mode uint32, count int32, indices unsafe.Pointer)

	executeGraph func(ctx uintptr, nodes unsafe.Pointer, count uint32, params unsafe.Pointer)
}

// DeviceInfo mirrors the fixed-size GpuDeviceInfo record of the native
// ABI: an enum tag, three null-terminated byte arrays and two capability
// fields. Field order and sizes must match the C struct exactly.
type DeviceInfo struct {
	backendType     uint32
	deviceName      [256]byte
	vendorName      [128]byte
	driverVersion   [64]byte
	maxTextureSize  uint32
	supportsCompute bool
}

// Backend returns the native backend type reported by the device.
func (i *DeviceInfo) Backend() backend.Type {
	return backendTypeFromCode(i.backendType)
}

// DeviceName returns the device name, decoded from its null-terminated
// byte array.
func (i *DeviceInfo) DeviceName() string {
	return cString(i.deviceName[:])
}

// VendorName returns the vendor name.
func (i *DeviceInfo) VendorName() string {
	return cString(i.vendorName[:])
}

// DriverVersion returns the driver version string.
func (i *DeviceInfo) DriverVersion() string {
	return cString(i.driverVersion[:])
}

// MaxTextureSize returns the largest supported texture dimension.
func (i *DeviceInfo) MaxTextureSize() uint32 {
	return i.maxTextureSize
}

// SupportsCompute reports whether the device supports compute shaders.
func (i *DeviceInfo) SupportsCompute() bool {
	return i.supportsCompute
}

// cString decodes a null-terminated byte array.
func cString(b []byte) string {
	if n := bytes.IndexByte(b, 0); n >= 0 {
		b = b[:n]
	}
	return string(b)
}

// backendTypeFromCode maps the ABI enum {0: none, 1: vulkan, 2: opengl,
// 3: opengles} to backend.Type.
func backendTypeFromCode(code uint32) backend.Type {
	switch code {
	case 1:
		return backend.TypeVulkan
	case 2:
		return backend.TypeOpenGL
	case 3:
		return backend.TypeOpenGLES
	default:
		return backend.TypeNone
	}
}
