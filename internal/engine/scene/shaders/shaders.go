// Package shaders holds the GLSL sources for the 3D plot.
package shaders

// SurfaceVertexShader transforms flat-colored surface vertices.
const SurfaceVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uViewProj;

out vec4 vColor;

void main() {
    vColor = aColor;
    gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

// SurfaceFragmentShader outputs the interpolated vertex color.
const SurfaceFragmentShader = `#version 410 core
in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
`

// EdgeVertexShader draws mesh edges from shared vertex positions.
const EdgeVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;

uniform mat4 uViewProj;

void main() {
    gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

// EdgeFragmentShader outputs a uniform color.
const EdgeFragmentShader = `#version 410 core
uniform vec4 uColor;
out vec4 FragColor;

void main() {
    FragColor = uColor;
}
`

// LineVertexShader expands each segment endpoint into one corner of a
// screen-space quad aWidth pixels wide.
const LineVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aOther;
layout (location = 2) in float aSide;
layout (location = 3) in vec4 aColor;
layout (location = 4) in float aWidth;

uniform mat4 uViewProj;
uniform vec2 uViewport;

out vec4 vColor;

void main() {
    vec4 clip = uViewProj * vec4(aPos, 1.0);
    vec4 other = uViewProj * vec4(aOther, 1.0);

    vec2 halfVp = uViewport * 0.5;
    vec2 a = clip.xy / clip.w * halfVp;
    vec2 b = other.xy / other.w * halfVp;

    vec2 dir = b - a;
    float len = length(dir);
    dir = len > 1e-6 ? dir / len : vec2(1.0, 0.0);
    vec2 normal = vec2(-dir.y, dir.x);

    clip.xy += normal * aSide * aWidth * 0.5 / halfVp * clip.w;
    gl_Position = clip;
    vColor = aColor;
}
`

// LineFragmentShader outputs the segment color.
const LineFragmentShader = `#version 410 core
in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
`
