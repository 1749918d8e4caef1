package shader

// Built-in demo sources used by the example binary and as known-good
// inputs when exercising a new context.

const demoVertexShaderGL = `#version 410 core
in vec2 position;
in vec3 color;
uniform mat4 transform;
out vec3 frag_color;
void main() {
    frag_color = color;
    gl_Position = transform * vec4(position, 0.0, 1.0);
}
`

const demoFragmentShaderGL = `#version 410 core
in vec3 frag_color;
uniform float brightness;
out vec4 fragColor;
void main() { fragColor = vec4(frag_color * brightness, 1.0); }
`

// DemoVertexShader returns a pass-through vertex shader with
// "position" (vec2) and "color" (vec3) attributes and a "transform"
// mat4 uniform.
func DemoVertexShader() string {
	return demoVertexShaderGL
}

// DemoFragmentShader returns a fragment shader forwarding the
// interpolated vertex color scaled by a "brightness" uniform.
func DemoFragmentShader() string {
	return demoFragmentShaderGL
}
