//go:build go1.18

package domain

import "testing"

// FuzzNewCPF checks that parsing never panics and that accepted values
// round-trip through String.
func FuzzNewCPF(f *testing.F) {
	f.Add("11144477735")
	f.Add("111.444.777-35")
	f.Add("11111111111")
	f.Add("")
	f.Add("\x00\x01")

	f.Fuzz(func(t *testing.T, input string) {
		cpf, err := NewCPF(input)
		if err != nil {
			return
		}
		again, err := NewCPF(cpf.String())
		if err != nil {
			t.Fatalf("accepted CPF failed round-trip: %v", err)
		}
		if !again.Equals(cpf) {
			t.Fatal("round-trip changed CPF")
		}
	})
}

func FuzzNewCNPJ(f *testing.F) {
	f.Add("11222333000181")
	f.Add("11.222.333/0001-81")
	f.Add("00000000000000")

	f.Fuzz(func(t *testing.T, input string) {
		cnpj, err := NewCNPJ(input)
		if err != nil {
			return
		}
		again, err := NewCNPJ(cnpj.String())
		if err != nil {
			t.Fatalf("accepted CNPJ failed round-trip: %v", err)
		}
		if !again.Equals(cnpj) {
			t.Fatal("round-trip changed CNPJ")
		}
		if _, err := NewCNPJ(cnpj.Format()); err == nil {
			t.Fatal("punctuated CNPJ accepted")
		}
	})
}
