//******************************************************************************************************
//  XmlDocument_test.go - Gbtc
//
//  Copyright © 2021, Grid Protection Alliance.  All Rights Reserved.
//
//  Licensed to the Grid Protection Alliance (GPA) under one or more contributor license agreements. See
//  the NOTICE file distributed with this work for additional information regarding copyright ownership.
//  The GPA licenses this file to you under the MIT License (MIT), the "License"; you may not use this
//  file except in compliance with the License. You may obtain a copy of the License at:
//
//      http://opensource.org/licenses/MIT
//
//  Unless agreed to in writing, the subject software distributed under the License is distributed on an
//  "AS-IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. Refer to the
//  License for the specific language governing permissions and limitations.
//
//  Code Modification History:
//  ----------------------------------------------------------------------------------------------------
//  09/25/2021 - J. Ritchie Carroll
//       Generated original version of source code.
//  07/30/2026 - loaded against a configuration-cache fixture instead of the STTP metadata sample.
//
//******************************************************************************************************

package xml

import (
	"fmt"
	"testing"
)

// xmlSchemaNamespace is the XML Schema namespace URI declared by the fixture's schema element.
const xmlSchemaNamespace = "http://www.w3.org/2001/XMLSchema"

var doc XmlDocument

func init() {
	doc.LoadXmlFromFile("../../test/ConfigurationCacheSample.xml")
}

func TestRootLevel(t *testing.T) {
	if doc.Root.Level != 0 {
		t.Fatalf("Root level in document tree should be zero")
	}
}

func TestChildNodeLoad(t *testing.T) {
	root := doc.Root

	if !root.HasChildNodes() {
		t.Fatalf("ConfigurationCacheSample.xml expected to have child nodes")
	}

	if len(root.ChildNodes) != 4 {
		t.Fatalf("ConfigurationCacheSample.xml expected to have 4 root child nodes, received: %d", len(root.ChildNodes))
	}
}

func TestMaxDepthLoad(t *testing.T) {
	if doc.MaxDepth() != 4 {
		t.Fatalf("ConfigurationCacheSample.xml expected to have max depth of 4, received: %d", doc.MaxDepth())
	}
}

func TestNamespaceLoad(t *testing.T) {
	schema := doc.Root.Item["schema"]

	if schema.Namespace != xmlSchemaNamespace {
		t.Fatalf("schema element expected namespace of \"%s\", received: \"%s\"", xmlSchemaNamespace, schema.Namespace)
	}
}

func TestAttributesLoad(t *testing.T) {
	schema := doc.Root.Item["schema"]

	id, found := schema.Attributes["id"]

	if !found {
		t.Fatalf("schema element expected to have attribute \"id\" = \"ConfigurationCache\", found none")
	}

	if id != "ConfigurationCache" {
		t.Fatalf("schema element expected to have attribute \"id\" = \"ConfigurationCache\", received: \"%s\"", id)
	}

	if len(schema.Attributes) != 4 {
		t.Fatalf("schema element expected to have 4 attributes, received: %d", len(schema.Attributes))
	}
}

func TestItemLoad(t *testing.T) {
	_, found := doc.Root.Item["InputAdapters"]

	if !found {
		t.Fatalf("ConfigurationCacheSample.xml expected to have \"InputAdapters\" node, found none")
	}
}

func TestItemsLoad(t *testing.T) {
	measurements := doc.Root.Item["ActiveMeasurements"]

	if len(measurements.Items["Measurement"]) != 3 {
		t.Fatalf("ActiveMeasurements expected 3 Measurement children, received: %d", len(measurements.Items["Measurement"]))
	}

	for _, node := range measurements.GetChildNodes() {
		fmt.Println(node.Name)
	}
}

func TestPrefixEmptyForDefaultNamespace(t *testing.T) {
	schema := doc.Root.Item["schema"]

	if prefix := schema.Prefix(); prefix != "" {
		t.Fatalf("expected no prefix for a default-namespace element, received: %q", prefix)
	}
}

func TestPrefixResolvesPrefixedBinding(t *testing.T) {
	var prefixed XmlDocument

	err := prefixed.LoadXml([]byte(
		`<root xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:schema id="x"/></root>`))

	if err != nil {
		t.Fatalf("failed to load prefixed fixture: %v", err)
	}

	schema := prefixed.Root.Item["schema"]

	if prefix := schema.Prefix(); prefix != "xs" {
		t.Fatalf("expected prefix \"xs\", received: %q", prefix)
	}
}

func TestReverseEnumeration(t *testing.T) {
	measurements := doc.Root.Item["ActiveMeasurements"]
	node := measurements.LastChild()
	count := 0

	for node != nil {
		count++
		node = node.Previous
	}

	if count != 3 {
		t.Fatalf("ActiveMeasurements expected 3 child nodes in reverse enumeration, received: %d", count)
	}
}
