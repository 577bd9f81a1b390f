package openstep

import (
	"bytes"
	"fmt"
)

func ExampleRawValue_Unmarshal() {
	type pbxprojFile struct {
		RootObjectRef string              `openstep:"rootObject"`
		Objects       map[string]RawValue `openstep:"objects"`
	}

	type rootObject struct {
		IsA                       string `openstep:"isa"`
		BuildConfigurationListRef string `openstep:"buildConfigurationList"`
		CompatibilityVersion      string `openstep:"compatibilityVersion"`
		Attributes                struct {
			LastUpgradeCheck int
		} `openstep:"attributes"`
	}

	buf := bytes.NewReader([]byte(`// !$*UTF8*$!
{
  objects = {
    D015A98C1A9E25AC00A8721B /* Project object */ = {
      isa = PBXProject;
      attributes = {
        LastUpgradeCheck = 0610;
      };
      buildConfigurationList = D015A98F1A9E25AC00A8721B /* Build configuration list for PBXProject "Test" */;
      compatibilityVersion = "Xcode 3.2";
    };
  };
  rootObject = D015A98C1A9E25AC00A8721B /* Project object */;
}
`))

	var pbxproj pbxprojFile
	decoder := NewDecoder(buf)
	err := decoder.Decode(&pbxproj)
	if err != nil {
		fmt.Println(err)
	}

	var project rootObject
	err = pbxproj.Objects[pbxproj.RootObjectRef].Unmarshal(&project, Lax(true))
	if err != nil {
		fmt.Println(err)
	}
	fmt.Println(project)

	// Output: {PBXProject D015A98F1A9E25AC00A8721B Xcode 3.2 {610}}
}
