package analyzertests

// singleUploadDocument has one each of a name, SSN, email, phone number, credit card number, and
// street address.
var singleUploadDocument = FixtureSpec{
	Filename: "test_document.txt",
	Content: `
John Doe
SSN: 123-45-6789
Email: john.doe@example.com
Phone: (555) 123-4567
Credit Card: 4532-1234-5678-9012
Address: 123 Main Street, Anytown

This is a test document containing various types of personally identifiable information.
The document should be analyzed for security vulnerabilities and PII detection.
`,
}

var batchDocuments = []FixtureSpec{
	{
		Filename: "doc1.txt",
		Content:  "Employee: Jane Smith\nSSN: 987-65-4321\nEmail: jane@company.com",
	},
	{
		Filename: "doc2.txt",
		Content:  "Customer phone: (555) 987-6543\nCredit Card: 5555-4444-3333-2222",
	},
}

// accuracyDocument has one instance of every expected PII category, plus a driver's license and
// a bank account number that no category asks for.
var accuracyDocument = FixtureSpec{
	Filename: "pii_test.txt",
	Content: `
Personal Information:
Name: Michael Johnson
SSN: 555-12-3456
Email: michael.johnson@testcompany.org
Phone: +1 (555) 234-5678
Credit Card: 4111-1111-1111-1111
Address: 456 Oak Avenue, Springfield
ZIP: 12345-6789
Driver's License: D123456789
Bank Account: 1234567890123456
`,
}
