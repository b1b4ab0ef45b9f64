package backend

// Built-in GLSL sources for the native path. The software backend
// accepts and ignores them.

// VertexBasic is the shared vertex stage: position, color and texture
// coordinate attributes under an orthographic projection.
const VertexBasic = `
#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;
layout (location = 2) in vec2 aTexCoord;

out vec4 vertexColor;
out vec2 texCoord;

uniform mat4 projection;
uniform mat4 view;
uniform mat4 model;

void main() {
    gl_Position = projection * view * model * vec4(aPos, 1.0);
    vertexColor = aColor;
    texCoord = aTexCoord;
}
`

// FragmentBasic passes the vertex color through.
const FragmentBasic = `
#version 330 core
in vec4 vertexColor;
in vec2 texCoord;
out vec4 FragColor;

void main() {
    FragColor = vertexColor;
}
`

// FragmentBlur accumulates distance-weighted samples over a square
// window controlled by blurRadius.
const FragmentBlur = `
#version 330 core
in vec4 vertexColor;
in vec2 texCoord;
out vec4 FragColor;

uniform float blurRadius;
uniform vec2 resolution;

void main() {
    vec4 color = vec4(0.0);
    float total = 0.0;

    for (float x = -blurRadius; x <= blurRadius; x++) {
        for (float y = -blurRadius; y <= blurRadius; y++) {
            float weight = 1.0 / (1.0 + length(vec2(x, y)));
            color += vertexColor * weight;
            total += weight;
        }
    }

    FragColor = color / total;
}
`

// FragmentGlow boosts the color by its own luminance.
const FragmentGlow = `
#version 330 core
in vec4 vertexColor;
in vec2 texCoord;
out vec4 FragColor;

uniform float glowIntensity;

void main() {
    vec4 color = vertexColor;
    float luminance = dot(color.rgb, vec3(0.299, 0.587, 0.114));
    vec3 glow = color.rgb * glowIntensity * luminance;
    FragColor = vec4(color.rgb + glow, color.a);
}
`

// FragmentGradient projects the centered texture coordinate onto the
// gradient direction.
const FragmentGradient = `
#version 330 core
in vec4 vertexColor;
in vec2 texCoord;
out vec4 FragColor;

uniform vec4 gradientStart;
uniform vec4 gradientEnd;
uniform float gradientAngle;

void main() {
    float angle = radians(gradientAngle);
    vec2 dir = vec2(cos(angle), sin(angle));
    float t = dot(texCoord - 0.5, dir) + 0.5;
    t = clamp(t, 0.0, 1.0);

    vec4 gradient = mix(gradientStart, gradientEnd, t);
    FragColor = gradient * vertexColor;
}
`

// FragmentRoundedRect clips to a rounded rectangle via its signed
// distance field with a one-pixel smoothstep edge.
const FragmentRoundedRect = `
#version 330 core
in vec4 vertexColor;
in vec2 texCoord;
out vec4 FragColor;

uniform float cornerRadius;
uniform vec2 resolution;

void main() {
    vec2 pos = texCoord * resolution;
    vec2 halfRes = resolution * 0.5;

    vec2 d = abs(pos - halfRes) - (halfRes - cornerRadius);
    float dist = length(max(d, 0.0)) + min(max(d.x, d.y), 0.0);

    float alpha = 1.0 - smoothstep(cornerRadius - 1.0, cornerRadius, dist);
    FragColor = vec4(vertexColor.rgb, vertexColor.a * alpha);
}
`

// FragmentBrightness scales the color channels.
const FragmentBrightness = `
#version 330 core
in vec4 vertexColor;
in vec2 texCoord;
out vec4 FragColor;

uniform float brightness;

void main() {
    vec4 color = vertexColor;
    FragColor = vec4(color.rgb * brightness, color.a);
}
`

// FragmentContrast scales distance from mid-gray.
const FragmentContrast = `
#version 330 core
in vec4 vertexColor;
in vec2 texCoord;
out vec4 FragColor;

uniform float contrast;

void main() {
    vec4 color = vertexColor;
    vec3 adjusted = (color.rgb - 0.5) * contrast + 0.5;
    FragColor = vec4(adjusted, color.a);
}
`

// FragmentDesaturate blends toward the luminance gray.
const FragmentDesaturate = `
#version 330 core
in vec4 vertexColor;
in vec2 texCoord;
out vec4 FragColor;

uniform float saturation;

void main() {
    vec4 color = vertexColor;
    float gray = dot(color.rgb, vec3(0.299, 0.587, 0.114));
    vec3 desaturated = mix(vec3(gray), color.rgb, saturation);
    FragColor = vec4(desaturated, color.a);
}
`
