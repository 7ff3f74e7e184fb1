package obfuscate_test

import (
	"log"
	"os"

	"github.com/xitonix/rotn/obfuscate"
)

type config map[string]string

func (c config) Get(key string) (string, bool) {
	value, ok := c[key]
	return value, ok
}

func ExampleEncoder_encode() {
	enc, err := obfuscate.New().Customize(config{
		"keyid":     "2",
		"secretkey": "ABC",
	})
	if err != nil {
		log.Fatal(err)
	}

	input, err := os.Open("input.dat")
	if err != nil {
		log.Fatal(err)
	}

	output, err := os.Create("encoded.dat.rotn")
	if err != nil {
		log.Fatal(err)
	}

	encoder := obfuscate.NewEncoder(enc, input, output)
	_, err = encoder.Encode()

	if err != nil {
		log.Fatal(err)
	}
}

func ExampleRotN_encrypt() {
	enc, err := obfuscate.New().Customize(config{"keyid": "13"})
	if err != nil {
		log.Fatal(err)
	}

	payload := []byte("Hello")
	framed := make([]byte, len(payload)+enc.Sizing())

	if _, err = enc.Encrypt(payload, framed); err != nil {
		log.Fatal(err)
	}
}
