// Package curveparams loads named curve-parameter presets - the base
// prime, the tower's non-residues, and the twisted curve's coefficients -
// from TOML, and builds the corresponding fp/fp2/fp3/fp6/fp12/twist
// descriptors from them. This lets the tower and twisted curve be
// instantiated for more than one pairing-friendly curve without
// recompiling constants into the core packages themselves.
package curveparams

import (
	"math/big"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/eth2030/pairingtower/pkg/field/fp"
	"github.com/eth2030/pairingtower/pkg/field/fp12"
	"github.com/eth2030/pairingtower/pkg/field/fp2"
	"github.com/eth2030/pairingtower/pkg/field/fp3"
	"github.com/eth2030/pairingtower/pkg/field/fp6"
	"github.com/eth2030/pairingtower/pkg/twist"
)

// ErrUnknownCurve is returned when a built-in preset name has no match.
var ErrUnknownCurve = errors.New("curveparams: unknown curve")

// ErrParse is wrapped around any TOML decode failure Load encounters.
var ErrParse = errors.New("curveparams: malformed preset file")

// rawPreset is the on-disk TOML shape: every large integer is a decimal
// string, since TOML has no native arbitrary-precision integer type.
type rawPreset struct {
	Name string `toml:"name"`

	Prime string `toml:"prime"`

	// Fp2NonResidue is beta, with Fp2 = Fp[u]/(u^2 - beta).
	Fp2NonResidue string `toml:"fp2_non_residue"`

	// Fp6NonResidue is xi = (c0, c1) in Fp2, with Fp6 = Fp2[v]/(v^3 - xi).
	Fp6NonResidueC0 string `toml:"fp6_non_residue_c0"`
	Fp6NonResidueC1 string `toml:"fp6_non_residue_c1"`

	// Fp3NonResidue is gamma, with Fp3 = Fp[t]/(t^3 - gamma) - the base
	// field of the twisted curve.
	Fp3NonResidue string `toml:"fp3_non_residue"`

	// CurveA, CurveB are the twisted curve's coefficients in Fp3,
	// each given as three Fp decimal strings (c0, c1, c2).
	CurveA [3]string `toml:"curve_a"`
	CurveB [3]string `toml:"curve_b"`
}

// Preset bundles a fully constructed tower (up to Fp12) and twisted curve
// for one named pairing-friendly curve.
type Preset struct {
	Name string

	Fp   *fp.Modulus
	Fp2  *fp2.Extension
	Fp3  *fp3.Extension
	Fp6  *fp6.Extension
	Fp12 *fp12.Extension

	Curve *twist.Curve
}

// Load reads a TOML preset file from path and builds its descriptors.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "curveparams: reading %s", path)
	}
	var raw rawPreset
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, errors.Wrapf(ErrParse, "decoding %s: %v", path, err)
	}
	return build(&raw)
}

func mustBig(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("curveparams: invalid decimal integer %q", s)
	}
	return v, nil
}

func build(raw *rawPreset) (*Preset, error) {
	p, err := mustBig(raw.Prime)
	if err != nil {
		return nil, err
	}
	fpMod := fp.NewModulus(p)

	beta, err := mustBig(raw.Fp2NonResidue)
	if err != nil {
		return nil, err
	}
	fp2Ext := fp2.NewExtension(fpMod, fp.New(fpMod, beta))

	xiC0, err := mustBig(raw.Fp6NonResidueC0)
	if err != nil {
		return nil, err
	}
	xiC1, err := mustBig(raw.Fp6NonResidueC1)
	if err != nil {
		return nil, err
	}
	xi := fp2.New(fp2Ext, fp.New(fpMod, xiC0), fp.New(fpMod, xiC1))
	fp6Ext := fp6.NewExtension(fp2Ext, xi)
	fp12Ext := fp12.NewExtension(fp6Ext)

	gamma, err := mustBig(raw.Fp3NonResidue)
	if err != nil {
		return nil, err
	}
	fp3Ext := fp3.NewExtension(fpMod, fp.New(fpMod, gamma))

	a, err := fp3FromStrings(fp3Ext, fpMod, raw.CurveA)
	if err != nil {
		return nil, err
	}
	b, err := fp3FromStrings(fp3Ext, fpMod, raw.CurveB)
	if err != nil {
		return nil, err
	}
	curve := twist.New(fp3Ext, a, b)

	return &Preset{
		Name:  raw.Name,
		Fp:    fpMod,
		Fp2:   fp2Ext,
		Fp3:   fp3Ext,
		Fp6:   fp6Ext,
		Fp12:  fp12Ext,
		Curve: curve,
	}, nil
}

func fp3FromStrings(ext *fp3.Extension, mod *fp.Modulus, cs [3]string) (*fp3.Element, error) {
	var vs [3]*fp.Element
	for i, s := range cs {
		v, err := mustBig(s)
		if err != nil {
			return nil, err
		}
		vs[i] = fp.New(mod, v)
	}
	return fp3.New(ext, vs[0], vs[1], vs[2]), nil
}

// builtin constructs a Preset directly from big.Int literals, without
// going through TOML decoding - used by the built-in presets below, which
// ship as Go source rather than files on disk.
func builtin(name, primeDec, betaDec, xiC0Dec, xiC1Dec, gammaDec string, aCoeffs, bCoeffs [3]string) (*Preset, error) {
	return build(&rawPreset{
		Name:            name,
		Prime:           primeDec,
		Fp2NonResidue:   betaDec,
		Fp6NonResidueC0: xiC0Dec,
		Fp6NonResidueC1: xiC1Dec,
		Fp3NonResidue:   gammaDec,
		CurveA:          aCoeffs,
		CurveB:          bCoeffs,
	})
}

// BN254 returns the tower descriptors (Fp through Fp12) for the BN254
// (alt_bn128) prime, the same curve the teacher's bn254*.go files target.
// BN254 itself is a sextic twist, not a cubic one, so its Preset.Curve is
// built with a=0, b=0 and exists only so BN254's tower can be exercised
// through the same Preset shape as Example462 - callers exponentiating or
// doing Frobenius work only need Preset.Fp12, not Preset.Curve, for this
// preset.
func BN254() (*Preset, error) {
	return builtin(
		"bn254",
		"21888242871839275222246405745257275088696311157297823662689037894645226208583",
		"-1",
		"9", "1",
		"-1",
		[3]string{"0", "0", "0"},
		[3]string{"0", "0", "0"},
	)
}

// Example462 returns a toy pairing-friendly preset built with a genuine
// cubic twist (non-zero curve coefficient a), over a small prime chosen
// only for fast arithmetic in tests and the CLI's demo mode - not a curve
// used in any production system.
func Example462() (*Preset, error) {
	return builtin(
		"example462",
		"2055236678969533001948963524292549209725396610320044949542151",
		"-1",
		"9", "1",
		"-2",
		[3]string{"1", "0", "0"},
		[3]string{"3", "0", "0"},
	)
}
