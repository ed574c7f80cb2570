//go:build windows

package webgpu

// workgroupSize is the number of threads per workgroup.
const workgroupSize = 256

// Every activation shader binds its inputs first, then the result buffer,
// then a Params uniform: size, p0, p1 (kind specific parameters).

// linearForwardShader: y = x, saturated to [-p0, p0] when p0 != 0.
const linearForwardShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
    clipping: f32,
    unused: f32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        var y = input[idx];
        if (params.clipping != 0.0) {
            y = clamp(y, -params.clipping, params.clipping);
        }
        result[idx] = y;
    }
}
`

// linearBackwardShader: dx = dy where |y| < p0 (or p0 == 0), else 0.
const linearBackwardShader = `
@group(0) @binding(0) var<storage, read> output: array<f32>;
@group(0) @binding(1) var<storage, read> diff: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
    clipping: f32,
    unused: f32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        var g = diff[idx];
        if (params.clipping != 0.0 && abs(output[idx]) >= params.clipping) {
            g = 0.0;
        }
        result[idx] = g;
    }
}
`

// rectifierForwardShader: y = x > 0 ? min(x, p1 or inf) : p0 * x.
const rectifierForwardShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
    leak_slope: f32,
    clipping: f32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let x = input[idx];
        var y = params.leak_slope * x;
        if (x > 0.0) {
            y = x;
            if (params.clipping > 0.0) {
                y = min(x, params.clipping);
            }
        }
        result[idx] = y;
    }
}
`

// rectifierBackwardShader mirrors engine.RectifierActivation.BackwardFunc.
const rectifierBackwardShader = `
@group(0) @binding(0) var<storage, read> output: array<f32>;
@group(0) @binding(1) var<storage, read> diff: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
    leak_slope: f32,
    clipping: f32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let y = output[idx];
        var g = params.leak_slope * diff[idx];
        if (y > 0.0) {
            g = diff[idx];
            if (params.clipping > 0.0 && y >= params.clipping) {
                g = 0.0;
            }
        }
        result[idx] = g;
    }
}
`

// tanhForwardShader: y = tanh(p0 * x).
const tanhForwardShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
    alpha: f32,
    unused: f32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        result[idx] = tanh(params.alpha * input[idx]);
    }
}
`

// tanhBackwardShader: dx = p0 * (1 - y^2) * dy.
const tanhBackwardShader = `
@group(0) @binding(0) var<storage, read> output: array<f32>;
@group(0) @binding(1) var<storage, read> diff: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
    alpha: f32,
    unused: f32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let y = output[idx];
        result[idx] = params.alpha * (1.0 - y * y) * diff[idx];
    }
}
`
