package earth

// Fresnel describes the rim glow material around the globe.
type Fresnel struct {
	RimColor    uint32
	FacingColor uint32
	Bias        float64
	Scale       float64
	Power       float64
}

func DefaultFresnel() Fresnel {
	return Fresnel{
		RimColor:    0x0088ff,
		FacingColor: 0x000000,
		Bias:        0.1,
		Scale:       1.0,
		Power:       4.0,
	}
}

const FresnelVertexShader = `
uniform float fresnelBias;
uniform float fresnelScale;
uniform float fresnelPower;

varying float vReflectionFactor;

void main() {
  vec4 mvPosition = modelViewMatrix * vec4(position, 1.0);
  vec4 worldPosition = modelMatrix * vec4(position, 1.0);

  vec3 worldNormal = normalize(mat3(modelMatrix[0].xyz, modelMatrix[1].xyz, modelMatrix[2].xyz) * normal);
  vec3 I = worldPosition.xyz - cameraPosition;

  vReflectionFactor = fresnelBias + fresnelScale * pow(1.0 + dot(normalize(I), worldNormal), fresnelPower);

  gl_Position = projectionMatrix * mvPosition;
}
`

const FresnelFragmentShader = `
uniform vec3 color1;
uniform vec3 color2;

varying float vReflectionFactor;

void main() {
  float f = clamp(vReflectionFactor, 0.0, 1.0);
  gl_FragColor = vec4(mix(color2, color1, vec3(f)), f);
}
`
