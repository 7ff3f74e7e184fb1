// Package extension implements the host side of the pluggable transform
// contract: a registry of named encryptor templates and a map backed
// implementation of the configuration lookup service.
//
// An embedding application creates the registry explicitly, registers the
// templates once and tears the registry down when it is finished:
//
//	registry := extension.NewRegistry()
//	if err := registry.AddEncryptor("rotn", obfuscate.New()); err != nil {
//		log.Fatal(err)
//	}
//	defer registry.Terminate()
//
//	enc, err := registry.Customize("rotn", extension.MapConfig{
//		"keyid":     "13",
//		"secretkey": "ABC",
//	})
package extension
