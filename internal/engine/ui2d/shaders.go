package ui2d

const solidVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const solidFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

const textVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

uniform mat4 uProjection;

out vec2 vTexCoord;
out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 1.0);
	vTexCoord = aTexCoord;
	vColor = aColor;
}
`

const textFragmentShader = `
#version 410 core

uniform sampler2D uTexture;

in vec2 vTexCoord;
in vec4 vColor;
out vec4 FragColor;

void main() {
	float coverage = texture(uTexture, vTexCoord).r;
	FragColor = vec4(vColor.rgb, vColor.a * coverage);
}
`

const sceneFragmentShader = `
#version 410 core

uniform sampler2D uTexture;

in vec2 vTexCoord;
out vec4 FragColor;

void main() {
	FragColor = vec4(texture(uTexture, vTexCoord).rgb, 1.0);
}
`
