// rotn is a one-shot command line tool which encodes or decodes a single
// input using the "rotn" transform.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/xitonix/rotn/b64"
	"github.com/xitonix/rotn/cmd/cliutil"
	"github.com/xitonix/rotn/extension"
	"github.com/xitonix/rotn/obfuscate"
)

func main() {
	var (
		keyID     = flag.String("keyid", "", "the rotation value (mandatory)")
		secretKey = flag.String("secretkey", "", "the alphabetic secret key. Leave empty for rotation only mode")
		decode    = flag.Bool("decode", false, "decode the input instead of encoding it")
		armor     = flag.Bool("armor", false, "base64 encode the output (or base64 decode the input in decode mode)")
		in        = flag.String("in", "", "the input file. Reads from stdin if empty")
		out       = flag.String("out", "", "the output file. Writes to stdout if empty")
		verbose   = flag.Bool("verbose", false, "enable verbose logging")
	)
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *keyID == "" {
		log.Fatal("the -keyid flag is mandatory")
	}

	registry := extension.NewRegistry()
	if err := registry.AddEncryptor("rotn", obfuscate.New()); err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := registry.Terminate(); err != nil {
			log.Error(err)
		}
	}()

	encryptor, err := registry.Customize("rotn", extension.MapConfig{
		"keyid":     *keyID,
		"secretkey": *secretKey,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := encryptor.Terminate(); err != nil {
			log.Error(err)
		}
	}()

	input, err := readInput(*in)
	if err != nil {
		log.Fatal(err)
	}
	log.Debugf("read %d byte(s) of input", len(input))

	var output []byte
	if *decode {
		output, err = decodeInput(encryptor, input, *armor)
	} else {
		output, err = encodeInput(encryptor, input, *armor)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := writeOutput(*out, output); err != nil {
		log.Fatal(err)
	}
}

func encodeInput(encryptor obfuscate.Encryptor, input []byte, armor bool) ([]byte, error) {
	framed := make([]byte, len(input)+encryptor.Sizing())
	count, err := encryptor.Encrypt(input, framed)
	if err != nil {
		return nil, err
	}
	framed = framed[:count]
	if armor {
		return b64.Encode(framed), nil
	}
	return framed, nil
}

func decodeInput(encryptor obfuscate.Encryptor, input []byte, armor bool) ([]byte, error) {
	if armor {
		decoded, err := b64.Decode(input)
		if err != nil {
			return nil, err
		}
		input = decoded
	}
	size := len(input) - encryptor.Sizing()
	if size < 0 {
		size = 0
	}
	payload := make([]byte, size)
	count, err := encryptor.Decrypt(input, payload)
	if err != nil {
		return nil, err
	}
	return payload[:count], nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(path)
}

func writeOutput(path string, content []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(content)
		return err
	}
	if _, err := os.Stat(path); err == nil {
		if !cliutil.AskForConfirmation(fmt.Sprintf("'%s' already exists. Would you like to overwrite it", path)) {
			return nil
		}
	}
	return ioutil.WriteFile(path, content, 0644)
}
