/*
Package olive implements Olive contract, a reputation-gated universal basic
income token.

Every symbol is a separate token with its own supply cap and issuer. Accounts
endorsed by reputable holders get a reputation record, and while their score
is positive and proof-of-personhood is set they accrue one whole token of
basic income per day. Income is paid lazily on the next transfer from the
account, up to 360 past days plus the current one; older days are forfeited.
Endorsement and drain burn tokens of the acting account and move the score of
the target up or down.

Transfer memo may carry a command instead of free text:

	--pop <value>   set proof-of-personhood of the sender
	--endorse       endorse the recipient with the transferred amount
	--drain         drain the recipient with the transferred amount

Contract account acts as an administrator: endorsements and drains made from
it skip reputation requirements and burn nothing. It is authorized by the
committee.

Contract is compiled by neo-go and deployed by cmd/olive-deploy:

	neo-go contract compile -i contracts/olive -c contracts/olive/config.yml \
		-m contracts/olive/manifest.json -o contracts/olive/contract.nef
	olive-deploy -rpc <endpoint> -wallet <committee wallet> \
		-nef contracts/olive/contract.nef -manifest contracts/olive/manifest.json

# Contract notifications

Create notification. This notification is produced when a new symbol is
registered.

	Create:
	  - name: issuer
	    type: Hash160
	  - name: symbol
	    type: String
	  - name: maxSupply
	    type: Integer

Issue notification. This notification is produced when tokens are minted by
the issuer. It is followed by the notifications of the transfer to the
recipient unless the recipient is the issuer.

	Issue:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: symbol
	    type: String
	  - name: memo
	    type: String

Retire notification. This notification is produced when the issuer burns
tokens.

	Retire:
	  - name: issuer
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: symbol
	    type: String
	  - name: memo
	    type: String

Transfer notification. This notification is produced on plain transfer
including transfer to self.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: symbol
	    type: String
	  - name: memo
	    type: String

Open notification. This notification is produced when a balance record is
created. Payer is the party the record is attributed to.

	Open:
	  - name: owner
	    type: Hash160
	  - name: symbol
	    type: String
	  - name: payer
	    type: Hash160

Close notification.

	Close:
	  - name: owner
	    type: Hash160
	  - name: symbol
	    type: String

Endorse notification. Score is the resulting score of the endorsed account.

	Endorse:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: symbol
	    type: String
	  - name: score
	    type: Integer

Drain notification. Score is the resulting score of the drained account.

	Drain:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: symbol
	    type: String
	  - name: score
	    type: Integer

ProofOfPersonhood notification.

	ProofOfPersonhood:
	  - name: owner
	    type: Hash160
	  - name: symbol
	    type: String
	  - name: value
	    type: String

Claim notification. This notification is produced when basic income is paid.
Memo is a human-readable record of the payment with the next claim date.

	Claim:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: symbol
	    type: String
	  - name: lastClaimDay
	    type: Integer
	  - name: lostDays
	    type: Integer
	  - name: memo
	    type: String
*/
package olive

/*
Contract storage model.

Current conventions:
 <code>: symbol code, 1 to 7 upper-case ASCII letters
 <owner>: 20-byte script hash of the account

# Summary
Key-value storage format:
 - 's<code>' -> std.Serialize(Stats)
   supply, supply cap, precision and issuer of the symbol
 - 'a<owner><code>' -> std.Serialize(Account)
   balance of the owner
 - 'p<owner><code>' -> std.Serialize(Person)
   score, claim pointer and proof-of-personhood of the owner

# Records
Person record is never stored without the balance record of the same owner
and symbol. Both are removed together on Close.

Claim pointer is a day number since the Unix epoch through which basic income
has been paid. It only moves forward.
*/
